package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/texbuild/internal/engine"
)

// Runner executes one resolved build. It is single-use: the context was
// consumed to build the engine command, and the event stream it produces
// is drained exactly once.
type Runner struct {
	ctx *Context
	eng *engine.Engine
}

// NewRunner seals a resolved context into a runner.
func NewRunner(c *Context) (*Runner, error) {
	eng, err := c.Engine()
	if err != nil {
		return nil, err
	}
	return &Runner{ctx: c, eng: eng}, nil
}

// Engine exposes the sealed command for debug output.
func (r *Runner) Engine() *engine.Engine { return r.eng }

// Run starts the build and returns its event stream. One goroutine feeds
// the bounded channel; the channel is closed after the terminal event
// (Finished, or Fatal on spawn/read failure). Cancelling ctx kills the
// engine subprocess.
func (r *Runner) Run(ctx context.Context) <-chan Event {
	events := make(chan Event, 16)
	go r.produce(ctx, events)
	return events
}

func (r *Runner) produce(ctx context.Context, events chan<- Event) {
	defer close(events)
	start := time.Now()

	events <- Compiling{
		BuildID: r.ctx.BuildID,
		Project: r.ctx.ProjectName,
		Root:    r.ctx.Root.String(),
	}

	run, err := r.eng.Start(ctx)
	if err != nil {
		events <- Fatal{Err: err}
		return
	}
	events <- Running{Program: r.ctx.Program}

	for line := range run.Lines {
		switch r.ctx.Verbosity {
		case Noisy:
			events <- RawLine{Line: line}
		default:
			if info, ok := engine.Classify(line); ok {
				events <- EngineEvent{Info: info}
			}
		}
	}

	code, err := run.Wait()
	if err != nil {
		events <- Fatal{Err: err}
		return
	}
	events <- Finished{
		Profile:  r.ctx.Profile,
		Duration: time.Since(start),
		ExitCode: code,
	}
}
