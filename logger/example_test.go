package logger_test

import (
	"os"

	"github.com/mordilloSan/console-logger/logger"
)

// fixedLocation pins the call site so example output is stable.
type fixedLocation string

func (f fixedLocation) Caller() string { return string(f) }
func (f fixedLocation) Stack() string  { return "main.main (" + string(f) + ")" }

// This example shows threshold filtering: info is dropped below WARN.
func ExampleNew() {
	log := logger.New(logger.Config{
		Level:   logger.WarnLevel,
		Stdout:  os.Stdout,
		Stderr:  os.Stdout,
		Locator: fixedLocation("main.go:42"),
	})

	log.Info("x")
	log.Error("y")
	// Output:
	// [ERROR] y main.go:42
}

// This example requests a stack trace for a single call.
func ExampleLogger_LogWith() {
	log := logger.New(logger.Config{
		Level:   logger.DebugLevel,
		Stdout:  os.Stdout,
		Stderr:  os.Stdout,
		Locator: fixedLocation("main.go:42"),
	})

	log.LogWith(logger.CallOptions{Trace: true}, logger.WarnLevel, "Low memory")
	// Output:
	// [WARN] Low memory main.go:42
	//   [WARN] Low memory main.go:42
	//   Trace
	//     main.main (main.go:42)
}

// This example uses the package-level default logger with colors.
func ExampleInit() {
	logger.Init(logger.Config{Level: logger.DebugLevel, Colorize: true})

	logger.Debug("debug is on")
	logger.Info("hello", "world")
	logger.Error(map[string]any{"error": "Server crashed", "code": 500})
	logger.SetLevel(logger.ErrorLevel)
	logger.Warn("filtered")
}
