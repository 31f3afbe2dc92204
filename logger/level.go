package logger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level defines log severity. Higher values are more severe.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = iota + 1
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// OffLevel disables all of the above when used as a threshold.
	OffLevel
)

// ErrUnknownLevel is returned by ParseLevel for input that names no level.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns all supported levels in ascending order.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		OffLevel,
	}
}

// String returns the level name used in the [LEVEL] label.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel parses a level name (case-insensitive) or its numeric value.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "OFF":
		return OffLevel, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Level(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
