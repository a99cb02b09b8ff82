package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogFile is created or appended in the working directory on
// every run unless the file sink is disabled.
const DefaultLogFile = "pysloc.log"

// NewLogger builds the logger instance every component writes
// through. Console verbosity follows the -v/-q flags; the log file,
// when logFile is non-empty, records everything down to debug level
// regardless. The returned closer flushes the file sink and must be
// closed when the run is over.
func NewLogger(console io.Writer, verbose, quiet bool, logFile string) (*logrus.Logger, io.Closer, error) {
	consoleLevel := logrus.InfoLevel
	switch {
	case verbose:
		consoleLevel = logrus.DebugLevel
	case quiet:
		// Quiet suppresses informational output only; warnings and
		// errors still surface.
		consoleLevel = logrus.WarnLevel
	}

	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(io.Discard)
	log.AddHook(&writerHook{
		w:   console,
		min: consoleLevel,
		formatter: &logrus.TextFormatter{
			FullTimestamp: true,
			DisableQuote:  true,
			PadLevelText:  true,
		},
	})

	if logFile == "" {
		return log, nil, nil
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	log.AddHook(&writerHook{
		w:   file,
		min: logrus.DebugLevel,
		formatter: &logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
			DisableQuote:  true,
			PadLevelText:  true,
		},
	})
	return log, file, nil
}

// writerHook routes entries at or above a minimum severity to one
// sink, letting console and log file run at different levels.
type writerHook struct {
	w         io.Writer
	min       logrus.Level
	formatter logrus.Formatter
}

func (h *writerHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *writerHook) Fire(entry *logrus.Entry) error {
	if entry.Level > h.min {
		return nil
	}
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}
