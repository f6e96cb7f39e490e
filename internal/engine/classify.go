package engine

import "strings"

// errorMarker prefixes TeX error lines in the engine's log output.
const errorMarker = "! "

// Info is a classified piece of engine output.
type Info interface{ engineInfo() }

// ErrorInfo is a diagnostic error line reported by the engine.
//
// Line is currently always 0: the engine does not report source line
// numbers on the marker line itself, and texbuild does not yet correlate
// the surrounding log context.
type ErrorInfo struct {
	Line    int
	Message string
}

func (ErrorInfo) engineInfo() {}

// Classify inspects one raw output line. It is a deliberately narrow
// heuristic over the engine's free-text log, not a full parser: only
// error-marker lines classify, everything else reports false.
func Classify(line string) (Info, bool) {
	if strings.HasPrefix(line, errorMarker) {
		return ErrorInfo{Line: 0, Message: strings.TrimPrefix(line, errorMarker)}, true
	}
	return nil, false
}
