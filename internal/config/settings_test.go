package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolp(b bool) *bool { return &b }

func outp(o OutputFormat) *OutputFormat { return &o }

func TestMergeLeftFillsAbsentOnly(t *testing.T) {
	a := ProjectSettings{Synctex: boolp(true)}
	b := ProjectSettings{Synctex: boolp(false), ShellEscape: boolp(true)}

	a.MergeLeft(b)

	assert.Equal(t, true, *a.Synctex)
	assert.Equal(t, true, *a.ShellEscape)
	assert.Nil(t, a.OutputFormat)
}

func TestMergeLeftIdempotent(t *testing.T) {
	a := ProjectSettings{OutputFormat: outp(OutputPdf)}
	b := ProjectSettings{OutputFormat: outp(OutputDvi), Synctex: boolp(true)}

	a.MergeLeft(b)
	once := a
	a.MergeLeft(b)

	assert.Equal(t, once, a)
}

func TestMergeRightPrefersOther(t *testing.T) {
	a := ProjectSettings{Synctex: boolp(true), ShellEscape: boolp(false)}
	b := ProjectSettings{Synctex: boolp(false)}

	a.MergeRight(b)

	assert.Equal(t, false, *a.Synctex)
	// b had no shell-escape value, a's survives.
	assert.Equal(t, false, *a.ShellEscape)
}

func TestMergeDuality(t *testing.T) {
	// a.MergeLeft(b) and b.MergeRight(a) agree field by field.
	mk := func() (ProjectSettings, ProjectSettings) {
		a := ProjectSettings{Synctex: boolp(true), OutputFormat: outp(OutputPdf)}
		b := ProjectSettings{Synctex: boolp(false), ShellEscape: boolp(true)}
		return a, b
	}

	left, other := mk()
	left.MergeLeft(other)

	a, right := mk()
	right.MergeRight(a)

	assert.Equal(t, left, right)
}

func TestEnumValidation(t *testing.T) {
	var f TexFormat
	assert.NoError(t, f.UnmarshalText([]byte("latex")))
	assert.Error(t, f.UnmarshalText([]byte("context")))

	var e TexEngine
	assert.NoError(t, e.UnmarshalText([]byte("luatex")))
	assert.Error(t, e.UnmarshalText([]byte("knuth")))

	var o OutputFormat
	assert.NoError(t, o.UnmarshalText([]byte("dvi")))
	assert.Error(t, o.UnmarshalText([]byte("html")))

	var b BibEngine
	assert.NoError(t, b.UnmarshalText([]byte("biber")))
	assert.Error(t, b.UnmarshalText([]byte("bibtex8")))
}
