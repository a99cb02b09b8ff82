package internal

import "errors"

// ScanOptions - public options from CLI.
type ScanOptions struct {
	Roots          []string
	IgnorePatterns []string
	IncludeHidden  bool
	PerFile        bool
	TotalOnly      bool
	Verbose        bool
	Quiet          bool
}

// Validate checks invariants.
func (o *ScanOptions) Validate() error {
	if len(o.Roots) == 0 {
		return errors.New("at least one root path is required")
	}
	if o.PerFile && o.TotalOnly {
		return errors.New("--per-file and --total-only are mutually exclusive")
	}
	if o.Verbose && o.Quiet {
		return errors.New("-v and -q are mutually exclusive")
	}
	return nil
}
