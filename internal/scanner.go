package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// ScanResult is the outcome of counting one file. Immutable after
// creation.
type ScanResult struct {
	Path      string
	CodeLines int
}

// ScanError reports a per-file failure. It is never fatal to the run:
// the walker logs it and continues, and the file is excluded from
// totals.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string { return fmt.Sprintf("scan %s: %v", e.Path, e.Err) }
func (e *ScanError) Unwrap() error { return e.Err }

var errBinaryContent = errors.New("binary content")

// FileScanner counts SLOC in single files.
type FileScanner struct {
	lang Language
	log  *logrus.Logger
}

// NewFileScanner creates a FileScanner for one language.
func NewFileScanner(lang Language, log *logrus.Logger) *FileScanner {
	return &FileScanner{lang: lang, log: log}
}

// ScanFile counts the code lines of one file. Classifier state starts
// fresh here, so an unterminated block comment in one file can never
// leak into the next.
func (s *FileScanner) ScanFile(path string) (ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScanResult{}, &ScanError{Path: path, Err: err}
	}
	defer f.Close()

	res, err := s.scanReader(path, f)
	if err != nil {
		return ScanResult{}, &ScanError{Path: path, Err: err}
	}
	return res, nil
}

func (s *FileScanner) scanReader(path string, r io.Reader) (ScanResult, error) {
	br := bufio.NewReader(r)
	var st ClassifierState
	code := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return ScanResult{}, err
		}
		if len(line) > 0 {
			if strings.IndexByte(line, 0x00) >= 0 {
				return ScanResult{}, errBinaryContent
			}
			var kind LineKind
			kind, st = s.lang.Classify(line, st)
			if kind == LineCode {
				code++
			}
		}
		if err == io.EOF {
			break
		}
	}
	s.log.Debugf("File %s has %d SLOC", path, code)
	return ScanResult{Path: path, CodeLines: code}, nil
}
