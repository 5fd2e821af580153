package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/grocer/runner"
	"github.com/robinvdvleuten/grocer/telemetry"
)

// debounceDelay coalesces the event bursts editors produce on save.
const debounceDelay = 100 * time.Millisecond

type WatchCmd struct {
	File   string `help:"Grocery command input file to watch." arg:""`
	Align  bool   `help:"Pad CHECK quantities into a single column."`
	Create bool   `help:"Automatically create file if it doesn't exist (no confirmation prompt)." short:"c"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	inputFile, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(inputFile); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access file: %w", err)
		}

		shouldCreate := cmd.Create
		if !shouldCreate {
			confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q does not exist. Create it?", inputFile))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			shouldCreate = confirmed
		}

		if !shouldCreate {
			return fmt.Errorf("file does not exist: %s", inputFile)
		}

		if err := os.MkdirAll(filepath.Dir(inputFile), 0755); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
		if err := os.WriteFile(inputFile, []byte(""), 0600); err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}

		printInfof(ctx.Stderr, "Created empty input file: %s", pathStyle.Render(inputFile))
	}

	var opts []runner.Option
	if cmd.Align {
		opts = append(opts, runner.WithAlignedCheck())
	}
	r := runner.New(ctx.Stdout, opts...)

	replay := func() {
		if err := r.RunFile(runCtx, inputFile); err != nil {
			printError(ctx.Stderr, err.Error())
			return
		}
		printSuccess(ctx.Stderr, fmt.Sprintf("replayed %s", pathStyle.Render(filepath.Base(inputFile))))
	}

	printInfof(ctx.Stderr, "Watching: %s", pathStyle.Render(inputFile))
	replay()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory so the file is still tracked through the
	// rename-and-replace dance most editors do on save.
	if err := watcher.Add(filepath.Dir(inputFile)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != inputFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				_, _ = fmt.Fprintln(ctx.Stdout)
				replay()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}
