package internal

import "strings"

// Language describes the comment syntax of one source language.
type Language struct {
	Name        string
	Ext         string   // file extension including the dot
	LineComment string   // token opening a comment that runs to end of line
	BlockDelims []string // tokens that both open and close a block comment
}

// Python is the only language pysloc understands. Triple-quoted
// strings at statement position are docstrings and count as block
// comments, the way sloccount-style tools treat them.
var Python = Language{
	Name:        "Python",
	Ext:         ".py",
	LineComment: "#",
	BlockDelims: []string{`"""`, `'''`},
}

// MatchesFile reports whether name carries the language's extension.
func (l Language) MatchesFile(name string) bool {
	return strings.HasSuffix(name, l.Ext)
}
