package build

import (
	"time"

	"git.home.luguber.info/inful/texbuild/internal/engine"
)

// Event is one item of the build event stream. Lifecycle events are
// strictly ordered: Compiling precedes Running precedes all engine
// events precedes Finished, and nothing follows Finished.
type Event interface{ buildEvent() }

// Compiling is emitted once before the engine is touched.
type Compiling struct {
	BuildID string
	Project string
	Root    string
}

// Running is emitted once the engine process has started.
type Running struct {
	Program string
}

// EngineEvent wraps one classified engine output item.
type EngineEvent struct {
	Info engine.Info
}

// RawLine is one verbatim engine output line, emitted in noisy mode in
// place of classified events.
type RawLine struct {
	Line string
}

// Fatal terminates the stream: the engine could not be spawned or its
// output could not be read. No Finished event follows.
type Fatal struct {
	Err error
}

// Finished is the final event of a successful stream. ExitCode carries
// the engine's exit status as data; the orchestrator does not turn a
// nonzero exit into a failure.
type Finished struct {
	Profile  string
	Duration time.Duration
	ExitCode int
}

func (Compiling) buildEvent()   {}
func (Running) buildEvent()     {}
func (EngineEvent) buildEvent() {}
func (RawLine) buildEvent()     {}
func (Fatal) buildEvent()       {}
func (Finished) buildEvent()    {}
