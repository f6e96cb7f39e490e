package engine

import "strconv"

// ArgSetter is implemented by any value that knows how to contribute
// itself under a flag name to an invocation. The flag vocabulary
// (one-dash names, space-separated values) is the pdftex family's; each
// value kind decides its own emission policy.
type ArgSetter interface {
	SetArg(name string, inv *Invocation)
}

// Flag is a presence-only boolean option: false contributes nothing.
type Flag bool

func (f Flag) SetArg(name string, inv *Invocation) {
	if f {
		inv.AppendArgs(name)
	}
}

// StringValue is an option with a textual value.
type StringValue string

func (s StringValue) SetArg(name string, inv *Invocation) {
	inv.AppendArgs(name, string(s))
}

// IntValue is an option with a small integer value.
type IntValue int

func (v IntValue) SetArg(name string, inv *Invocation) {
	inv.AppendArgs(name, strconv.Itoa(int(v)))
}

// setOptional contributes the value only when present; an absent optional
// contributes nothing.
func setOptional[T ArgSetter](v *T, name string, inv *Invocation) {
	if v != nil {
		(*v).SetArg(name, inv)
	}
}

// InteractionMode is the engine's prompt behavior. Builds always run
// nonstop so a missing file cannot block on an interactive prompt.
type InteractionMode string

const (
	BatchMode     InteractionMode = "batchmode"
	NonStopMode   InteractionMode = "nonstopmode"
	ScrollMode    InteractionMode = "scrollmode"
	ErrorStopMode InteractionMode = "errorstopmode"
)

func (m InteractionMode) SetArg(name string, inv *Invocation) {
	inv.AppendArgs(name, string(m))
}

// OutputFmt is the pdftex-family job output format.
type OutputFmt string

const (
	OutputFmtPdf OutputFmt = "pdf"
	OutputFmtDvi OutputFmt = "dvi"
)

func (f OutputFmt) SetArg(name string, inv *Invocation) {
	inv.AppendArgs(name, string(f))
}
