package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyErrorLine(t *testing.T) {
	info, ok := Classify("! Undefined control sequence.")
	require.True(t, ok)

	errInfo, ok := info.(ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "Undefined control sequence.", errInfo.Message)
	assert.Equal(t, 0, errInfo.Line)
}

func TestClassifyIgnoresOrdinaryLines(t *testing.T) {
	for _, line := range []string{
		"This is pdfTeX, Version 3.14",
		"(./main.tex",
		"Output written on build/main.pdf (1 page, 12816 bytes).",
		"",
		"!missing space is not the marker",
	} {
		_, ok := Classify(line)
		assert.False(t, ok, "line %q must not classify", line)
	}
}

func TestClassifyMarkerOnly(t *testing.T) {
	info, ok := Classify("! ")
	require.True(t, ok)
	assert.Equal(t, "", info.(ErrorInfo).Message)
}
