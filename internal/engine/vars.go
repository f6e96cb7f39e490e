package engine

import (
	"fmt"
	"strings"
)

// Vars are the build-time macros texbuild defines for the document before
// handing control to its entry point. A document can branch on
// \TexbuildProfile or place floats relative to \TexbuildOutputDirectory.
type Vars struct {
	Profile         string
	OutputDirectory string
	Bibliography    string
}

// Prelude renders the \def sequence terminated by the \input of the entry
// point. The whole string is passed to the engine as its input argument.
func (v Vars) Prelude(entryPoint string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `\def\TexbuildProfile{%s}`, v.Profile)
	fmt.Fprintf(&b, `\def\TexbuildOutputDirectory{%s}`, v.OutputDirectory)
	if v.Bibliography != "" {
		fmt.Fprintf(&b, `\def\TexbuildBibliography{%s}`, v.Bibliography)
	}
	fmt.Fprintf(&b, `\input{%s}`, entryPoint)
	return b.String()
}
