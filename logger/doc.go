// Package logger provides a small leveled console logger that tags every
// message with its level and call site, with optional stack traces.
//
// # Levels
//
// Levels are ordered DebugLevel < InfoLevel < WarnLevel < ErrorLevel < OffLevel.
// A message is emitted when its level is at or above the logger's threshold,
// so a threshold of OffLevel silences the four convenience methods.
//
// # Console Output
//
// Debug and info messages go to stdout, warnings and errors to stderr.
// A primitive message (string, bool or number) prints on one line:
//
//	[WARN] disk almost full /srv/app/main.go:42 93%
//
// Any other value (struct, map, slice, pointer, error) is dumped with its
// full structure inside an indented block:
//
//	[ERROR] /srv/app/main.go:57
//	  (map[string]interface {}) (len=2) {
//	    ...
//	  }
//
// Set Config.Colorize to color the [LEVEL] label. When JOURNAL_STREAM is set,
// each line carries a syslog priority prefix for journald.
//
// # Stack Traces
//
// SetTrace(true) appends a stack trace to every message. A single call can
// request one with LogWith:
//
//	log.LogWith(logger.CallOptions{Trace: true}, logger.WarnLevel, "low memory")
//
// # Usage
//
//	log := logger.New(logger.Config{Level: logger.DebugLevel})
//	log.Info("user created")
//	log.Error(map[string]any{"error": "server crashed", "code": 500})
//	log.SetLevel(logger.WarnLevel)
//
// The package-level functions (Info, Warn, ...) use a default logger that
// Init replaces.
//
// # Environment
//
// With a zero Config.Level, LOGGER_LEVEL sets the threshold by name or number.
// LOGGER_TRACE=true enables default tracing.
package logger
