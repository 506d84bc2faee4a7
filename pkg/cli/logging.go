package cli

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus.Logger configured from cfg. Text formatting
// is the default, matching a plain console-output style;
// SWT_LOG_FORMAT=json switches to structured JSON for machine-consumed
// runs.
func NewLogger(cfg Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
