package engine

// Synctex argument values, see `man synctex`.
const (
	SynctexGzipped   = 1
	SynctexUngzipped = -1
)

// Options are the pdftex-family command line options texbuild drives.
// Field emission is composed explicitly in Apply; each field kind brings
// its own policy via ArgSetter.
type Options struct {
	Interaction     InteractionMode
	OutputDirectory StringValue
	OutputFormat    *OutputFmt
	Synctex         *IntValue
	Jobname         *StringValue
	ShellEscape     Flag
	NoShellEscape   Flag
	Draftmode       Flag
	FileLineError   Flag
}

// Apply contributes every set option onto the invocation, using the
// pdftex family's one-dash kebab-case flag names.
func (o *Options) Apply(inv *Invocation) {
	o.Interaction.SetArg("-interaction", inv)
	if o.OutputDirectory != "" {
		o.OutputDirectory.SetArg("-output-directory", inv)
	}
	setOptional(o.OutputFormat, "-output-format", inv)
	setOptional(o.Synctex, "-synctex", inv)
	setOptional(o.Jobname, "-jobname", inv)
	o.ShellEscape.SetArg("-shell-escape", inv)
	o.NoShellEscape.SetArg("-no-shell-escape", inv)
	o.Draftmode.SetArg("-draftmode", inv)
	o.FileLineError.SetArg("-file-line-error", inv)
}
