package internal

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func newTestWalker(t *testing.T, root string, patterns []string, includeHidden bool) (*Walker, *bytes.Buffer) {
	t.Helper()
	log, buf := newTestLogger()
	m, err := NewIgnoreMatcher(root, patterns, includeHidden, log)
	if err != nil {
		t.Fatalf("NewIgnoreMatcher: %v", err)
	}
	return NewWalker(m, NewFileScanner(Python, log), log), buf
}

// buildTree creates the reference fixture: a.py with 3 code lines and
// tests/b.py with 5.
func buildTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "import os\n\n# comment\nx = 1\ny = 2  # inline\n")
	writeFile(t, dir, filepath.Join("tests", "b.py"), "a = 1\nb = 2\nc = 3\nd = 4\ne = 5\n")
	return dir
}

func collect(t *testing.T, w *Walker, root string) []ScanResult {
	t.Helper()
	var results []ScanResult
	if err := w.Walk(context.Background(), root, func(res ScanResult) {
		results = append(results, res)
	}); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	return results
}

func total(results []ScanResult) int {
	sum := 0
	for _, r := range results {
		sum += r.CodeLines
	}
	return sum
}

func TestWalk_CountsAllFiles(t *testing.T) {
	root := buildTree(t)
	w, _ := newTestWalker(t, root, nil, false)

	results := collect(t, w, root)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if got := total(results); got != 8 {
		t.Errorf("expected total 8, got %d", got)
	}
}

func TestWalk_IgnorePattern(t *testing.T) {
	root := buildTree(t)
	w, _ := newTestWalker(t, root, []string{"tests/*"}, false)

	results := collect(t, w, root)
	if len(results) != 1 {
		t.Fatalf("expected only a.py, got %d results", len(results))
	}
	if filepath.Base(results[0].Path) != "a.py" {
		t.Errorf("expected a.py, got %s", results[0].Path)
	}
	if got := total(results); got != 3 {
		t.Errorf("expected total 3, got %d", got)
	}
}

func TestWalk_HiddenFileDefault(t *testing.T) {
	root := buildTree(t)
	writeFile(t, root, ".hidden.py", "secret = 1\n")

	w, _ := newTestWalker(t, root, nil, false)
	for _, res := range collect(t, w, root) {
		if filepath.Base(res.Path) == ".hidden.py" {
			t.Fatal("hidden file must be excluded by default")
		}
	}

	w, _ = newTestWalker(t, root, nil, true)
	found := false
	for _, res := range collect(t, w, root) {
		if filepath.Base(res.Path) == ".hidden.py" {
			found = true
			if res.CodeLines != 1 {
				t.Errorf("hidden file scanned wrong: %d SLOC", res.CodeLines)
			}
		}
	}
	if !found {
		t.Fatal("include-hidden must scan dotfiles")
	}
}

func TestWalk_PrunedDirNeverOpened(t *testing.T) {
	root := buildTree(t)
	// A broken file inside an ignored directory must never be read,
	// so it cannot produce a scan warning.
	writeFile(t, root, filepath.Join("skip", "broken.py"), "x = 1\n\x00\x00\n")

	w, buf := newTestWalker(t, root, []string{"skip"}, false)
	results := collect(t, w, root)

	if got := total(results); got != 8 {
		t.Errorf("pruned dir must not affect totals, got %d", got)
	}
	if strings.Contains(buf.String(), "Failed to scan") {
		t.Error("file inside pruned dir must never be opened")
	}
}

func TestWalk_ScanErrorIsRecovered(t *testing.T) {
	root := buildTree(t)
	writeFile(t, root, "broken.py", "x = 1\n\x00\x00\n")

	w, buf := newTestWalker(t, root, nil, false)
	results := collect(t, w, root)

	if got := total(results); got != 8 {
		t.Errorf("broken file must be excluded from totals, got %d", got)
	}
	if !strings.Contains(buf.String(), "Failed to scan") {
		t.Error("scan failure must be logged as a warning")
	}
}

func TestWalk_NonSourceFilesSkippedSilently(t *testing.T) {
	root := buildTree(t)
	writeFile(t, root, "notes.txt", "not python\n")
	writeFile(t, root, "data.json", "{}\n")

	w, buf := newTestWalker(t, root, nil, false)
	results := collect(t, w, root)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	out := buf.String()
	if strings.Contains(out, "notes.txt") || strings.Contains(out, "data.json") {
		t.Error("non-source files are skipped without logging")
	}
}

func TestWalk_Idempotent(t *testing.T) {
	root := buildTree(t)
	w, _ := newTestWalker(t, root, nil, false)

	first := collect(t, w, root)
	second := collect(t, w, root)
	if len(first) != len(second) {
		t.Fatalf("runs disagree on file count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestWalk_BadRoot(t *testing.T) {
	w, _ := newTestWalker(t, t.TempDir(), nil, false)

	if err := w.Walk(context.Background(), filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("missing root must fail")
	}

	file := writeFile(t, t.TempDir(), "file.py", "x = 1\n")
	if err := w.Walk(context.Background(), file, nil); err == nil {
		t.Error("root that is a file must fail")
	}
}

func TestWalk_Cancelled(t *testing.T) {
	root := buildTree(t)
	w, _ := newTestWalker(t, root, nil, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Walk(ctx, root, func(ScanResult) {}); err == nil {
		t.Error("cancelled context must abort the walk")
	}
}
