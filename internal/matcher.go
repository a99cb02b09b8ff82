package internal

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// IgnoreMatcher decides whether a path is excluded from the scan.
// Patterns are compiled once at startup; matching afterwards is pure
// string work with no filesystem access.
type IgnoreMatcher struct {
	root          string // absolute
	patterns      []ignorePattern
	includeHidden bool
	log           *logrus.Logger
}

type ignorePattern struct {
	raw string
	g   glob.Glob
}

// NewIgnoreMatcher compiles the ignore patterns up front so a
// malformed pattern fails the run before any traversal starts.
func NewIgnoreMatcher(root string, patterns []string, includeHidden bool, log *logrus.Logger) (*IgnoreMatcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	m := &IgnoreMatcher{root: absRoot, includeHidden: includeHidden, log: log}
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, ignorePattern{raw: p, g: g})
	}
	return m, nil
}

// ShouldIgnore reports whether path is excluded. Every pattern is
// tested against three forms of the path: absolute, relative to the
// scan root, and basename alone; the first hit wins. A basename
// pattern therefore also matches a same-named file elsewhere in the
// tree - intentional, this mirrors fnmatch-style matchers. Hidden
// names are excluded unless includeHidden is set.
func (m *IgnoreMatcher) ShouldIgnore(path string) bool {
	name := filepath.Base(path)

	if !m.includeHidden && isHidden(name) {
		m.log.Debugf("Hidden path ignored: %s", path)
		return true
	}
	if len(m.patterns) == 0 {
		return false
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	rel, err := filepath.Rel(m.root, abs)
	if err != nil {
		rel = abs
	}

	candidates := [3]string{filepath.ToSlash(abs), filepath.ToSlash(rel), name}
	for _, p := range m.patterns {
		for _, c := range candidates {
			if p.g.Match(c) {
				m.log.WithFields(logrus.Fields{"path": path, "pattern": p.raw}).Debug("Ignored by pattern")
				return true
			}
		}
	}
	return false
}

// isHidden reports whether name is a dot entry. "." and ".." are path
// syntax, not hidden files.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
