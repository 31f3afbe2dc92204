package logger

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Locator resolves source information for the code that called into the logger.
// Output is best-effort and may be empty.
type Locator interface {
	// Caller returns the "file:line" of the first frame outside this package.
	Caller() string
	// Stack returns one "function (file:line)" line per frame, starting at the caller.
	Stack() string
}

// maxStackDepth bounds how many frames are captured per call.
const maxStackDepth = 64

// internalPrefix is the function-name prefix shared by every frame of this package.
var internalPrefix = packagePrefix()

func packagePrefix() string {
	return reflect.TypeOf(runtimeLocator{}).PkgPath() + "."
}

// runtimeLocator walks the goroutine stack with runtime.Callers.
type runtimeLocator struct{}

func (runtimeLocator) Caller() string {
	frames := externalFrames()
	if len(frames) == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", frames[0].File, frames[0].Line)
}

func (runtimeLocator) Stack() string {
	frames := externalFrames()
	lines := make([]string, 0, len(frames))
	for _, f := range frames {
		lines = append(lines, fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line))
	}
	return strings.Join(lines, "\n")
}

// externalFrames returns the stack from the first frame that is not part of the logger.
func externalFrames() []runtime.Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}

	iter := runtime.CallersFrames(pcs[:n])
	var frames []runtime.Frame
	for {
		frame, more := iter.Next()
		if len(frames) > 0 || !isInternalFrame(frame) {
			frames = append(frames, frame)
		}
		if !more {
			break
		}
	}
	return frames
}

// isInternalFrame reports whether the frame belongs to this package's own sources.
// Test files of the package count as callers.
func isInternalFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, internalPrefix) &&
		!strings.HasSuffix(frame.File, "_test.go")
}
