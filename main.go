package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/console-logger/logger"
)

// Example demonstrating console-logger usage.
func main() {
	level := logger.DebugLevel

	// Usage: ./console-logger [level]
	// Example: ./console-logger warn
	if len(os.Args) > 1 {
		parsed, err := logger.ParseLevel(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		level = parsed
	}

	log := logger.New(logger.Config{Level: level, Colorize: true})

	// Primitive messages print on a single line with the call site
	log.Info("User created successfully")
	log.Debug("cache lookup", "user:123", true)

	// Per-call stack trace
	log.LogWith(logger.CallOptions{Trace: true}, logger.WarnLevel, "Low memory")

	// Structured messages are dumped in full
	log.Error(map[string]any{"error": "Server crashed", "code": 500})
	log.LogWith(logger.CallOptions{Trace: true}, logger.DebugLevel,
		struct {
			Session string
			Status  string
		}{"abc123", "expired"})

	log.SetLevel(logger.InfoLevel)
	log.Debug("hidden after SetLevel(INFO)")

	log.SetTrace(true)
	log.Info("every message is traced now")
	log.SetTrace(false)

	// Package-level functions use the default logger
	logger.Info("default logger ready")
}
