package internal

import "strings"

// LineKind is the classification of a single source line.
type LineKind int

const (
	LineCode LineKind = iota
	LineBlank
	LineComment
)

// ClassifierState is the only classification state that survives
// between lines: whether we are inside a block comment, and which
// delimiter opened it. It is scoped to one file and must start as the
// zero value for every file.
type ClassifierState struct {
	inBlock bool
	delim   string
}

// InsideBlock reports whether the state is currently inside a block
// comment.
func (st ClassifierState) InsideBlock() bool { return st.inBlock }

// Classify decides whether line is code, blank, or comment and
// returns the state for the next line. The whole line counts as
// comment when any part of it lies inside a block comment, even if
// code follows the close token on the same line.
func (l Language) Classify(line string, st ClassifierState) (LineKind, ClassifierState) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return LineBlank, st
	}

	if st.inBlock {
		if strings.Contains(line, st.delim) {
			st.inBlock = false
			st.delim = ""
		}
		return LineComment, st
	}

	for _, d := range l.BlockDelims {
		if strings.HasPrefix(trimmed, d) {
			if !strings.Contains(trimmed[len(d):], d) {
				st.inBlock = true
				st.delim = d
			}
			return LineComment, st
		}
	}

	if strings.HasPrefix(trimmed, l.LineComment) {
		return LineComment, st
	}
	return LineCode, st
}
