package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Engine is one fully-built, not-yet-started typesetting command.
type Engine struct {
	inv Invocation
}

// New wraps a prepared invocation. Most callers go through Builder; New
// exists for callers that assemble the command themselves.
func New(inv Invocation) *Engine { return &Engine{inv: inv} }

// Invocation exposes the sealed command for debug logging.
func (e *Engine) Invocation() *Invocation { return &e.inv }

// Run is a started engine process. Lines carries the engine's standard
// output one line at a time and is closed at EOF; Wait must be called
// after draining to reap the process and learn its exit status.
type Run struct {
	Lines <-chan string

	cmd     *exec.Cmd
	scanErr <-chan error
}

// Start spawns the engine. The subprocess is bound to ctx: cancelling the
// context kills the child rather than orphaning it. TeX engines write
// diagnostics to stdout; stderr is discarded.
func (e *Engine) Start(ctx context.Context) (*Run, error) {
	cmd := exec.CommandContext(ctx, e.inv.Program, e.inv.Args...)
	cmd.Dir = e.inv.Dir
	cmd.Env = e.inv.environ()
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe %s stdout: %w", e.inv.Program, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", e.inv.Program, err)
	}

	lines := make(chan string, 64)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
	}()

	return &Run{Lines: lines, cmd: cmd, scanErr: scanErr}, nil
}

// Wait reaps the process and returns its exit code. Only I/O failures
// are errors; a nonzero engine exit is data, not an error.
func (r *Run) Wait() (int, error) {
	if err := <-r.scanErr; err != nil {
		_ = r.cmd.Wait()
		return -1, fmt.Errorf("read engine output: %w", err)
	}
	err := r.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("wait for engine: %w", err)
}
