// Package logging wires up the go-logging backend with the formatter
// and per-module loggers this engine needs (engine, search, uci, test),
// grounded on the teacher engine's franky_logging package.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var (
	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	initialized bool
)

func setup(level logging.Level) {
	if initialized {
		return
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	initialized = true
}

// ParseLevel maps a config string ("DEBUG", "INFO", ...) to a
// go-logging level, defaulting to INFO on an unrecognised value.
func ParseLevel(s string) logging.Level {
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return lvl
}

// Get returns the named logger, initialising the shared backend with
// level on first call - callers pass the configured level each time but
// only the first call takes effect, matching the teacher's one-backend-
// per-process model.
func Get(name string, level logging.Level) *logging.Logger {
	setup(level)
	return logging.MustGetLogger(name)
}

// UCI I/O must never be polluted by log output on stdout, since a UCI
// GUI reads every stdout line as a protocol message (spec §5) - the
// backend above writes to stderr for exactly that reason.
