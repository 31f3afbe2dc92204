package logger

import "sync/atomic"

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(Config{}))
}

// Init replaces the default logger used by the package-level functions.
func Init(config Config) {
	std.Store(New(config))
}

// Default returns the logger behind the package-level functions.
func Default() *Logger {
	return std.Load()
}

// SetDefault installs l as the default logger.
func SetDefault(l *Logger) {
	std.Store(l)
}

// Debug logs at DebugLevel on the default logger.
func Debug(msg any, args ...any) {
	Default().log(DebugLevel, CallOptions{}, msg, args)
}

// Info logs at InfoLevel on the default logger.
func Info(msg any, args ...any) {
	Default().log(InfoLevel, CallOptions{}, msg, args)
}

// Warn logs at WarnLevel on the default logger.
func Warn(msg any, args ...any) {
	Default().log(WarnLevel, CallOptions{}, msg, args)
}

// Error logs at ErrorLevel on the default logger.
func Error(msg any, args ...any) {
	Default().log(ErrorLevel, CallOptions{}, msg, args)
}

// Log logs at level on the default logger.
func Log(level Level, msg any, args ...any) {
	Default().log(level, CallOptions{}, msg, args)
}

// LogWith logs at level on the default logger with per-call options.
func LogWith(opts CallOptions, level Level, msg any, args ...any) {
	Default().log(level, opts, msg, args)
}

// SetLevel replaces the default logger's threshold.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// SetTrace replaces the default logger's trace flag.
func SetTrace(enabled bool) {
	Default().SetTrace(enabled)
}
