package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/grocer/runner"
	"github.com/robinvdvleuten/grocer/telemetry"
)

type RunCmd struct {
	Files []string `help:"Grocery command input files (omit to read from stdin)." arg:"" optional:"" type:"existingfile"`
	Align bool     `help:"Pad CHECK quantities into a single column."`
}

func (cmd *RunCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	var opts []runner.Option
	if cmd.Align {
		opts = append(opts, runner.WithAlignedCheck())
	}
	r := runner.New(ctx.Stdout, opts...)

	if len(cmd.Files) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		return r.Run(runCtx, "<stdin>", src)
	}

	failed := false
	for _, file := range cmd.Files {
		// Each source is framed independently; the engine state never
		// carries over between files.
		_, _ = fmt.Fprintf(ctx.Stdout, "--- %s ---\n", file)

		if err := r.RunFile(runCtx, file); err != nil {
			printError(ctx.Stderr, err.Error())
			failed = true
		}

		_, _ = fmt.Fprintln(ctx.Stdout)
	}

	if failed {
		return NewCommandError(1)
	}
	return nil
}
