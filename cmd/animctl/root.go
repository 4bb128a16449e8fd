package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/phanxgames/animator"
	"github.com/phanxgames/animator/internal/logging"
	"github.com/phanxgames/animator/mqttsink"
)

// sceneFlags are the root's persistent flags, shared by the commands that
// build a scene.
type sceneFlags struct {
	css        string
	tree       string
	config     string
	logLevel   string
	mqttBroker string
	mqttTopic  string
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.css, "css", "", "Stylesheet file")
	pf.StringVar(&f.tree, "tree", "", "Node tree file (YAML or JSON), required by run and view")
	pf.StringVar(&f.config, "config", "", "Animator config file (YAML)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.mqttBroker, "mqtt-broker", "", "Publish animation events to this MQTT broker")
	pf.StringVar(&f.mqttTopic, "mqtt-topic", "animator/events", "MQTT topic for animation events")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "animctl",
		Short:         "animctl drives class and style animations over an element tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := &sceneFlags{}
	flags.register(root)
	root.AddCommand(newRunCmd(flags), newViewCmd(flags), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of animctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "animctl version %s\n", animator.Version)
		},
	}
}

// loadScene builds the scene described by the css and tree files.
func loadScene(f *sceneFlags) (*animator.Scene, error) {
	if f.tree == "" {
		return nil, errors.New(`required flag "tree" not set`)
	}
	ss := &animator.Stylesheet{}
	if f.css != "" {
		data, err := os.ReadFile(f.css)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		if ss, err = animator.ParseStylesheet(string(data)); err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(f.tree)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	tree, err := animator.LoadTree(data)
	if err != nil {
		return nil, err
	}
	scene := animator.NewScene(ss)
	scene.Root().AddChild(tree)
	return scene, nil
}

// animatorOptions loads the config and builds the logger and event sink.
func animatorOptions(f *sceneFlags) ([]animator.Option, *slog.Logger, error) {
	cfg, err := animator.LoadConfig(f.config)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if f.logLevel != "" {
		level = f.logLevel
	}
	logger := logging.New(logging.ParseLevel(level))
	opts := []animator.Option{animator.WithConfig(cfg), animator.WithLogger(logger)}

	if f.mqttBroker != "" {
		client, err := connectMQTT(f.mqttBroker)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, animator.WithEventSink(mqttsink.New(client, f.mqttTopic, mqttsink.WithLogger(logger))))
	}
	return opts, logger, nil
}

func connectMQTT(broker string) (mqtt.Client, error) {
	options := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("animctl").
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}
	return client, nil
}

func readScript(path string) (*animator.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return animator.LoadScript(data)
}
