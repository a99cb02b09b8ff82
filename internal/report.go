package internal

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Reporter aggregates per-file results in walk order and writes the
// summary through the logger, so -q and the log file see exactly what
// the console sees.
type Reporter struct {
	log       *logrus.Logger
	totalOnly bool
	results   []ScanResult
	total     int
}

// NewReporter creates a Reporter. With totalOnly set, Summary emits
// the total line only.
func NewReporter(log *logrus.Logger, totalOnly bool) *Reporter {
	return &Reporter{log: log, totalOnly: totalOnly}
}

// Add records one result.
func (r *Reporter) Add(res ScanResult) {
	r.results = append(r.results, res)
	r.total += res.CodeLines
}

// Total returns the running sum of code lines.
func (r *Reporter) Total() int { return r.total }

// Files returns the number of scanned files.
func (r *Reporter) Files() int { return len(r.results) }

// Summary writes the per-file table (unless totalOnly) and the total
// for one scanned root.
func (r *Reporter) Summary(root string) {
	if !r.totalOnly {
		r.log.Infof("SLOC summary for %s", root)
		for _, res := range r.results {
			r.log.Infof("%8d | %s", res.CodeLines, displayPath(res.Path, root))
		}
	}
	r.log.Infof("Total SLOC: %d", r.total)
}

// displayPath prefers a root-relative path for readability.
func displayPath(path, root string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
