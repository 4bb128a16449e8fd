package main

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/phanxgames/animator"
	"github.com/phanxgames/animator/ebitenhost"
)

func newViewCmd(flags *sceneFlags) *cobra.Command {
	var (
		script      string
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window showing the tree, optionally playing a script live",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(flags)
			if err != nil {
				return err
			}
			opts, logger, err := animatorOptions(flags)
			if err != nil {
				return err
			}
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				opts = append(opts, animator.WithMetrics(reg))
				go func() {
					err := http.ListenAndServe(metricsAddr, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
					if err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error("metrics server", "error", err)
					}
				}()
			}

			s := &animator.Script{}
			if script != "" {
				if s, err = readScript(script); err != nil {
					return err
				}
			}
			runner := animator.NewRunner(s, scene, opts...)
			game := ebitenhost.New(scene, runner.Clock(), ebitenhost.RunConfig{
				Title:      "animctl",
				ShowLabels: true,
			})
			player := runner.Player()
			game.SetUpdateFunc(func() error {
				_, err := player.Poll()
				return err
			})
			return ebitenhost.Run(game)
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "Script to play live")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	return cmd
}
