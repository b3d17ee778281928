package utils

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SetupLogger configures the process-wide logger. All logging goes to
// stderr; stdout is reserved for the report table.
func SetupLogger(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to error", level)
		lvl = logrus.ErrorLevel
	}
	logrus.SetLevel(lvl)
}

// NewRunLogger returns a log entry tagged with a unique id for this
// invocation, so one run's lines can be told apart in aggregated logs.
func NewRunLogger() *logrus.Entry {
	return logrus.WithField("run_id", uuid.New().String())
}
