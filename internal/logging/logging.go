// Package logging configures the diagnostic logger shared by depdrift's
// commands. Diagnostics go to stderr so reports on stdout stay parseable.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing plain text to w. Only warnings and errors are
// emitted unless verbose is set, in which case debug messages are included.
func New(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// Discard returns a logger that drops every message.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log *logrus.Logger) *logrus.Logger {
	if log == nil {
		return Discard()
	}
	return log
}
