package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"pysloc/internal"
)

func main() {
	app := &cli.App{
		Name:      "pysloc",
		Usage:     "Count Python source lines of code (SLOC) in directory trees",
		ArgsUsage: "root [root...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "ignore",
				Aliases: []string{"i"},
				Usage:   "Glob pattern for files or directories to skip (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "total-only",
				Usage: "Only show the total SLOC",
			},
			&cli.BoolFlag{
				Name:    "per-file",
				Aliases: []string{"p"},
				Usage:   "Show per-file SLOC (default)",
			},
			&cli.BoolFlag{
				Name:  "include-hidden",
				Usage: "Include hidden files and directories (names starting with \".\")",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Verbose output (debug level, logs every ignore decision)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress per-file and info output; warnings and errors still surface",
			},
			&cli.BoolFlag{
				Name:  "no-log-file",
				Usage: "Do not write " + internal.DefaultLogFile,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	opts := internal.ScanOptions{
		Roots:          c.Args().Slice(),
		IgnorePatterns: c.StringSlice("ignore"),
		IncludeHidden:  c.Bool("include-hidden"),
		PerFile:        c.Bool("per-file"),
		TotalOnly:      c.Bool("total-only"),
		Verbose:        c.Bool("verbose"),
		Quiet:          c.Bool("quiet"),
	}
	if err := opts.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logFile := internal.DefaultLogFile
	if c.Bool("no-log-file") {
		logFile = ""
	}
	log, closer, err := internal.NewLogger(os.Stdout, opts.Verbose, opts.Quiet, logFile)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if closer != nil {
		defer closer.Close()
	}
	log.Info("pysloc started")

	// Fail before any scanning if a root is missing or not a directory.
	for _, root := range opts.Roots {
		st, err := os.Stat(root)
		if err != nil {
			return cli.Exit(fmt.Sprintf("root path %s does not exist", root), 1)
		}
		if !st.IsDir() {
			return cli.Exit(fmt.Sprintf("root path %s is not a directory", root), 1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	overall := 0
	for _, root := range opts.Roots {
		matcher, err := internal.NewIgnoreMatcher(root, opts.IgnorePatterns, opts.IncludeHidden, log)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		scanner := internal.NewFileScanner(internal.Python, log)
		walker := internal.NewWalker(matcher, scanner, log)
		reporter := internal.NewReporter(log, opts.TotalOnly)

		if err := walker.Walk(ctx, root, reporter.Add); err != nil {
			if ctx.Err() != nil {
				// Interrupted: partial results are discarded.
				log.Warn("Scan cancelled")
				return cli.Exit("scan cancelled", 1)
			}
			return cli.Exit(err.Error(), 1)
		}
		reporter.Summary(root)
		overall += reporter.Total()
	}

	if len(opts.Roots) > 1 {
		log.Infof("Combined total across %d paths: %d", len(opts.Roots), overall)
	}
	return nil
}
