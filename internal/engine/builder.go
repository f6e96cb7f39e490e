package engine

import (
	"os"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

// listSeparator joins TEXINPUTS entries. Kpathsea uses the platform's
// path list separator.
const listSeparator = string(os.PathListSeparator)

// Builder assembles one engine invocation for the pdftex family. The
// zero value is not usable; start from NewPdftex.
type Builder struct {
	inv       Invocation
	opts      Options
	texinputs []string
	prelude   string
}

// NewPdftex starts a builder for the given executable. Interaction is
// forced to nonstop mode so the engine never blocks on a prompt.
func NewPdftex(program string) *Builder {
	return &Builder{
		inv:  Invocation{Program: program},
		opts: Options{Interaction: NonStopMode},
	}
}

// WithSrcDir makes the source directory the working directory and the
// first input search path entry.
func (b *Builder) WithSrcDir(src dirs.Path[dirs.Src]) *Builder {
	b.inv.Dir = src.String()
	b.texinputs = append(b.texinputs, src.String())
	return b
}

// WithOutputDir routes all engine outputs into the build directory.
func (b *Builder) WithOutputDir(out dirs.Path[dirs.Build]) *Builder {
	b.opts.OutputDirectory = StringValue(out.String())
	return b
}

// WithSynctex enables gzipped SyncTeX generation.
func (b *Builder) WithSynctex(on bool) *Builder {
	if on {
		v := IntValue(SynctexGzipped)
		b.opts.Synctex = &v
	}
	return b
}

// WithShellEscape takes a three-state setting: nil leaves the engine
// default, true passes -shell-escape, false passes -no-shell-escape.
func (b *Builder) WithShellEscape(enabled *bool) *Builder {
	if enabled == nil {
		return b
	}
	if *enabled {
		b.opts.ShellEscape = true
	} else {
		b.opts.NoShellEscape = true
	}
	return b
}

// WithOutputFormat requests dvi or pdf job output.
func (b *Builder) WithOutputFormat(f OutputFmt) *Builder {
	b.opts.OutputFormat = &f
	return b
}

// WithJobname overrides the engine's default job name.
func (b *Builder) WithJobname(name string) *Builder {
	v := StringValue(name)
	b.opts.Jobname = &v
	return b
}

// WithDependencies appends dependency directories to the input search
// path.
func (b *Builder) WithDependencies(paths []string) *Builder {
	b.texinputs = append(b.texinputs, paths...)
	return b
}

// WithVars sets the build-time macro prelude handed to the engine as its
// input, ending in the \input of the entry point.
func (b *Builder) WithVars(v Vars, entryPoint string) *Builder {
	b.prelude = v.Prelude(entryPoint)
	return b
}

// Finish seals the builder into a runnable engine. The environment
// disables output line wrapping and publishes the input search path; a
// trailing separator keeps the system default directories reachable.
func (b *Builder) Finish() *Engine {
	inv := b.inv
	inv.Setenv("max_print_line", strconv.Itoa(1<<30))
	if len(b.texinputs) > 0 {
		inv.Setenv("TEXINPUTS", strings.Join(b.texinputs, listSeparator)+listSeparator)
	}
	b.opts.Apply(&inv)
	if b.prelude != "" {
		inv.AppendArgs(b.prelude)
	}
	return &Engine{inv: inv}
}
