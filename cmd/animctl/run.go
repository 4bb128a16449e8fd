package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/phanxgames/animator"
)

func newRunCmd(flags *sceneFlags) *cobra.Command {
	var (
		asJSON bool
		spans  bool
	)
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script against a tree and print every class and style change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), cmd.OutOrStdout(), flags, args[0], asJSON, spans)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the trace as JSON lines")
	cmd.Flags().BoolVar(&spans, "spans", false, "Print a summary of class transition spans")
	return cmd
}

func runScript(ctx context.Context, w io.Writer, flags *sceneFlags, path string, asJSON, spans bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scene, err := loadScene(flags)
	if err != nil {
		return err
	}
	script, err := readScript(path)
	if err != nil {
		return err
	}
	opts, _, err := animatorOptions(flags)
	if err != nil {
		return err
	}
	recorder := tracetest.NewSpanRecorder()
	if spans {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		defer func() { _ = tp.Shutdown(context.Background()) }()
		opts = append(opts, animator.WithTracerProvider(tp))
	}

	trace, runErr := animator.NewRunner(script, scene, opts...).Run(ctx)
	if asJSON {
		enc := json.NewEncoder(w)
		for _, e := range trace {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
	} else {
		printTrace(w, trace)
	}
	if spans {
		printSpans(w, recorder.Ended())
	}
	return runErr
}

func printTrace(w io.Writer, trace []animator.TraceEntry) {
	out := termenv.NewOutput(w)
	step := -1
	for _, e := range trace {
		if e.Step != step {
			step = e.Step
			fmt.Fprintln(w, out.String(fmt.Sprintf("step %d @ %v", e.Step, e.Time)).Bold())
		}
		value := e.Value
		if value == "" {
			value = "(cleared)"
		}
		prop := out.String(e.Property).Foreground(out.Color("#818cf8"))
		if e.Property == animator.ClassNameProperty {
			prop = out.String(e.Property).Foreground(out.Color("#f472b6"))
		}
		fmt.Fprintf(w, "  %s %s = %s\n", e.Node, prop, value)
	}
}

func printSpans(w io.Writer, spans []sdktrace.ReadOnlySpan) {
	for _, s := range spans {
		fmt.Fprintf(w, "span %s", s.Name())
		for _, kv := range s.Attributes() {
			fmt.Fprintf(w, " %s=%s", kv.Key, kv.Value.Emit())
		}
		fmt.Fprintln(w)
	}
}
