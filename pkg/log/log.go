// Package log provides the minimal logging surface the core components
// write to.
package log

import "github.com/sirupsen/logrus"

// Logger is implemented by anything the core can log through.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, configured the way the
// emulator expects its output: plain text, no timestamps.
func New() Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
