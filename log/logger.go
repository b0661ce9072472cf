// Package log is a thin facade over go-logging that gives every package a
// named, leveled logger with a single process-wide sink.
package log

import (
	"io"
	"os"

	logging "github.com/op/go-logging"
)

// Level selects logger verbosity
type Level int

// The levels that can be passed to SetLevel
const (
	Debug Level = iota
	Info
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`[%{time:15:04:05.000}] [%{module}] %{level}: %{message}`,
)

// Logger is the leveled logging interface handed to packages
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var leveledBackend logging.LeveledBackend

// New creates a named logger
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to the given writer
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel adjusts the verbosity of every logger
func SetLevel(level Level) {
	mapped := logging.INFO
	switch level {
	case Debug:
		mapped = logging.DEBUG
	case Info:
		mapped = logging.INFO
	case Warning:
		mapped = logging.WARNING
	case Error:
		mapped = logging.ERROR
	}
	leveledBackend.SetLevel(mapped, "")
}

func init() {
	SetSink(os.Stderr)
}
