// Package config holds the tool-wide and per-project configuration
// surfaces of texbuild and the merge rules that layer them. Both surfaces
// are TOML: the global config lives in the user's config directory, the
// project manifest at the project root.
package config

import "fmt"

// TexFormat selects the macro format handed to the engine.
type TexFormat string

const (
	FormatTex   TexFormat = "tex"
	FormatLatex TexFormat = "latex"
)

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (f *TexFormat) UnmarshalText(b []byte) error {
	switch v := TexFormat(b); v {
	case FormatTex, FormatLatex:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown tex format %q", b)
	}
}

// TexEngine selects the typesetting engine family.
type TexEngine string

const (
	EngineTex    TexEngine = "tex"
	EnginePdftex TexEngine = "pdftex"
	EngineXetex  TexEngine = "xetex"
	EngineLuatex TexEngine = "luatex"
)

func (e *TexEngine) UnmarshalText(b []byte) error {
	switch v := TexEngine(b); v {
	case EngineTex, EnginePdftex, EngineXetex, EngineLuatex:
		*e = v
		return nil
	default:
		return fmt.Errorf("unknown tex engine %q", b)
	}
}

// OutputFormat is the artifact format requested from the engine.
type OutputFormat string

const (
	OutputDvi OutputFormat = "dvi"
	OutputPs  OutputFormat = "ps"
	OutputPdf OutputFormat = "pdf"
)

func (o *OutputFormat) UnmarshalText(b []byte) error {
	switch v := OutputFormat(b); v {
	case OutputDvi, OutputPs, OutputPdf:
		*o = v
		return nil
	default:
		return fmt.Errorf("unknown output format %q", b)
	}
}

// BibEngine selects the bibliography processor.
type BibEngine string

const BibBiber BibEngine = "biber"

func (e *BibEngine) UnmarshalText(b []byte) error {
	switch v := BibEngine(b); v {
	case BibBiber:
		*e = v
		return nil
	default:
		return fmt.Errorf("unknown bib engine %q", b)
	}
}

// SystemSettings pick the toolchain for a project. They are fixed per
// project and not overridable by profiles.
type SystemSettings struct {
	TexFormat TexFormat  `toml:"tex-format"`
	TexEngine TexEngine  `toml:"tex-engine"`
	BibEngine *BibEngine `toml:"bib-engine"`
}

// ProjectSettings are the per-build knobs that profiles may override.
// Absent fields (nil) defer to the next layer down.
type ProjectSettings struct {
	OutputFormat *OutputFormat `toml:"output-format"`
	ShellEscape  *bool         `toml:"shell-escape"`
	Synctex      *bool         `toml:"synctex"`
}

// MergeLeft fills each absent field of s from other; present fields keep
// their value. Layering project defaults beneath the standard profile
// defaults uses this direction.
func (s *ProjectSettings) MergeLeft(other ProjectSettings) {
	if s.OutputFormat == nil {
		s.OutputFormat = other.OutputFormat
	}
	if s.ShellEscape == nil {
		s.ShellEscape = other.ShellEscape
	}
	if s.Synctex == nil {
		s.Synctex = other.Synctex
	}
}

// MergeRight overwrites each field of s for which other has a value.
// Applying profile overrides above project defaults uses this direction.
func (s *ProjectSettings) MergeRight(other ProjectSettings) {
	if other.OutputFormat != nil {
		s.OutputFormat = other.OutputFormat
	}
	if other.ShellEscape != nil {
		s.ShellEscape = other.ShellEscape
	}
	if other.Synctex != nil {
		s.Synctex = other.Synctex
	}
}
