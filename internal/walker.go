package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Walker drives the scan: it enumerates a root depth-first, prunes
// ignored directories before opening them, and hands every eligible
// file to the FileScanner.
type Walker struct {
	matcher *IgnoreMatcher
	scanner *FileScanner
	log     *logrus.Logger
}

// NewWalker creates a Walker from its collaborators.
func NewWalker(matcher *IgnoreMatcher, scanner *FileScanner, log *logrus.Logger) *Walker {
	return &Walker{matcher: matcher, scanner: scanner, log: log}
}

// Walk scans every eligible file under root and passes each result to
// sink in traversal order. Per-file failures are logged as warnings
// and skipped; only an unusable root or a cancelled context aborts
// the walk.
func (w *Walker) Walk(ctx context.Context, root string, sink func(ScanResult)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", root)
	}
	w.log.Debugf("Walking %s files under root: %s", w.scanner.lang.Name, root)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == root {
				return err
			}
			w.log.WithFields(logrus.Fields{"path": path, "err": err}).Warn("Cannot read path, skipping")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// Pruned directories are never opened; a descendant can
			// not un-ignore itself.
			if path != root && w.matcher.ShouldIgnore(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if w.matcher.ShouldIgnore(path) {
			return nil
		}
		// Non-source files are skipped silently, unlike explicit
		// ignore matches which are logged.
		if !w.scanner.lang.MatchesFile(d.Name()) {
			return nil
		}

		res, err := w.scanner.ScanFile(path)
		if err != nil {
			w.log.WithFields(logrus.Fields{"file": path, "err": err}).Warn("Failed to scan file")
			return nil
		}
		sink(res)
		return nil
	})
}
