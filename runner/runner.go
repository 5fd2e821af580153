// Package runner replays command sources through the engine. Each source
// is evaluated against a freshly initialized engine, so independent input
// files never share state. The runner owns the boundary between the engine
// and its collaborators: it feeds parsed commands in, and emits CHECK and
// PROFIT output through the report package.
//
// Example usage:
//
//	r := runner.New(os.Stdout)
//	if err := r.RunFile(ctx, "input_01.txt"); err != nil {
//	    // I/O failure; replay output is already on stdout
//	}
package runner

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/robinvdvleuten/grocer/command"
	"github.com/robinvdvleuten/grocer/engine"
	"github.com/robinvdvleuten/grocer/parser"
	"github.com/robinvdvleuten/grocer/report"
	"github.com/robinvdvleuten/grocer/telemetry"
)

// Runner replays command sources and writes their output to out.
type Runner struct {
	out     io.Writer
	aligned bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithAlignedCheck pads CHECK quantities into a single column.
func WithAlignedCheck() Option {
	return func(r *Runner) {
		r.aligned = true
	}
}

// New creates a Runner writing to out.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile replays a single input file against a fresh engine. The returned
// error covers I/O only; semantic violations never surface as errors, they
// degrade the replay output itself.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r.Run(ctx, path, src)
}

// Run replays a single in-memory source against a fresh engine.
func (r *Runner) Run(ctx context.Context, name string, src []byte) error {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("replay %s", name))
	defer timer.End()

	eng := engine.New()

	scanner := bufio.NewScanner(bytes.NewReader(src))
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		cmd := parser.ParseLine(scanner.Text(), lineNum)
		if cmd == nil {
			continue
		}

		switch cmd.(type) {
		case *command.Check:
			r.writeCheck(eng)
		case *command.Profit:
			p, valid := eng.Profit()
			fmt.Fprintln(r.out, report.Profit(p, valid))
		default:
			eng.Apply(cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", name, err)
	}
	return nil
}

func (r *Runner) writeCheck(eng *engine.Engine) {
	counts, ok := eng.Check()
	if !ok {
		// Suppressed entirely once the run is invalid.
		return
	}

	rows := report.Check(counts)
	if r.aligned {
		rows = report.CheckAligned(counts)
	}
	for _, row := range rows {
		fmt.Fprintln(r.out, row)
	}
}
