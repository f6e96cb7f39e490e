package eventstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"git.home.luguber.info/inful/texbuild/internal/build"
	"git.home.luguber.info/inful/texbuild/internal/engine"
	"git.home.luguber.info/inful/texbuild/internal/logfields"
)

// Persisted event type names.
const (
	TypeCompiling   = "compiling"
	TypeRunning     = "running"
	TypeEngineError = "engine_error"
	TypeFatal       = "fatal"
	TypeFinished    = "finished"
)

// Payload shapes, one per event type. Raw lines are not persisted: noisy
// mode is a display concern, not history.
type (
	CompilingPayload struct {
		Project string `json:"project"`
		Root    string `json:"root"`
	}
	RunningPayload struct {
		Program string `json:"program"`
	}
	EngineErrorPayload struct {
		Line    int    `json:"line"`
		Message string `json:"message"`
	}
	FatalPayload struct {
		Error string `json:"error"`
	}
	FinishedPayload struct {
		Profile    string `json:"profile"`
		DurationMS int64  `json:"duration_ms"`
		ExitCode   int    `json:"exit_code"`
	}
)

// Recorder forwards one build's events into a store. Failures are logged
// and swallowed: history must never break a build.
type Recorder struct {
	store    Store
	buildID  string
	metadata map[string]string
}

// NewRecorder creates a recorder for one build. The metadata tags every
// persisted event, so projections need no joins.
func NewRecorder(store Store, buildID, project, profile string) *Recorder {
	return &Recorder{
		store:   store,
		buildID: buildID,
		metadata: map[string]string{
			"project": project,
			"profile": profile,
		},
	}
}

// Record persists one stream event.
func (r *Recorder) Record(ctx context.Context, ev build.Event) {
	var (
		eventType string
		payload   any
	)
	switch e := ev.(type) {
	case build.Compiling:
		eventType = TypeCompiling
		payload = CompilingPayload{Project: e.Project, Root: e.Root}
	case build.Running:
		eventType = TypeRunning
		payload = RunningPayload{Program: e.Program}
	case build.EngineEvent:
		errInfo, ok := e.Info.(engine.ErrorInfo)
		if !ok {
			return
		}
		eventType = TypeEngineError
		payload = EngineErrorPayload{Line: errInfo.Line, Message: errInfo.Message}
	case build.RawLine:
		// Noisy streams carry raw lines instead of classified events, so
		// classify here to keep history uniform across verbosity levels.
		info, ok := engine.Classify(e.Line)
		if !ok {
			return
		}
		errInfo, ok := info.(engine.ErrorInfo)
		if !ok {
			return
		}
		eventType = TypeEngineError
		payload = EngineErrorPayload{Line: errInfo.Line, Message: errInfo.Message}
	case build.Fatal:
		eventType = TypeFatal
		payload = FatalPayload{Error: e.Err.Error()}
	case build.Finished:
		eventType = TypeFinished
		payload = FinishedPayload{
			Profile:    e.Profile,
			DurationMS: e.Duration.Milliseconds(),
			ExitCode:   e.ExitCode,
		}
	default:
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("failed to encode history event", logfields.BuildID(r.buildID), logfields.Error(err))
		return
	}
	if err := r.store.Append(ctx, r.buildID, eventType, data, r.metadata); err != nil {
		slog.Warn("failed to record history event", logfields.BuildID(r.buildID), logfields.Error(err))
	}
}

// Summarize folds one build's events into its summary projection.
func Summarize(buildID string, events []Event) BuildSummary {
	summary := BuildSummary{BuildID: buildID, ExitCode: -1}
	for _, ev := range events {
		switch ev.Type {
		case TypeCompiling:
			summary.StartedAt = ev.Timestamp
			summary.Project = ev.Metadata["project"]
			summary.Profile = ev.Metadata["profile"]
		case TypeEngineError:
			summary.ErrorCount++
		case TypeFinished:
			var p FinishedPayload
			if err := json.Unmarshal(ev.Payload, &p); err == nil {
				summary.DurationMS = p.DurationMS
				summary.ExitCode = p.ExitCode
				summary.Finished = true
			}
		}
	}
	return summary
}
