package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
)

// Config defines options for New and Init.
// The zero value yields an InfoLevel logger without default tracing that writes to stdout/stderr.
type Config struct {
	// Level is the minimum severity emitted; zero falls back to LOGGER_LEVEL or InfoLevel.
	// Default: 0 (InfoLevel unless LOGGER_LEVEL is set)
	Level Level
	// Trace attaches a stack trace to every emitted message.
	// Default: false (LOGGER_TRACE=true enables it)
	Trace bool
	// Colorize enables ANSI color output for the [LEVEL] label.
	// Default: false
	Colorize bool
	// Stdout receives debug, info and unmapped levels.
	// Default: os.Stdout
	Stdout io.Writer
	// Stderr receives warnings and errors.
	// Default: os.Stderr
	Stderr io.Writer
	// Locator resolves call sites and stack traces.
	// Default: a runtime stack walk that skips this package's frames.
	Locator Locator
}

// CallOptions alter a single LogWith call without touching the Logger's state.
type CallOptions struct {
	// Trace attaches a stack trace to this call only.
	Trace bool
}

// Logger filters messages by level and writes them to the console.
// It is safe for concurrent use; SetLevel and SetTrace are last-write-wins.
type Logger struct {
	level atomic.Int64
	trace atomic.Bool

	colorize bool
	syslog   bool
	stdout   io.Writer
	stderr   io.Writer
	locator  Locator

	// mu keeps grouped blocks from interleaving.
	mu sync.Mutex
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// groupIndent is added per nesting level inside a grouped block.
const groupIndent = "  "

var labelColors = map[Level]string{
	DebugLevel: "\033[36m",
	InfoLevel:  "\033[32m",
	WarnLevel:  "\033[33m",
	ErrorLevel: "\033[31m",
}

const colorReset = "\033[0m"

// dumper renders structured values with their full structure.
var dumper = spew.ConfigState{
	Indent:                  groupIndent,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// New returns a Logger configured by config.
func New(config Config) *Logger {
	l := &Logger{
		colorize: config.Colorize,
		syslog:   shouldUseSyslogPrefix(),
		stdout:   config.Stdout,
		stderr:   config.Stderr,
		locator:  config.Locator,
	}
	if l.stdout == nil {
		l.stdout = outStdout
	}
	if l.stderr == nil {
		l.stderr = outStderr
	}
	if l.locator == nil {
		l.locator = runtimeLocator{}
	}
	l.level.Store(int64(resolveLevel(config.Level, l.stderr)))
	l.trace.Store(resolveTrace(config.Trace, l.stderr))
	return l
}

func resolveLevel(level Level, errOut io.Writer) Level {
	if level != 0 {
		return level
	}
	if env := os.Getenv("LOGGER_LEVEL"); env != "" {
		parsed, err := ParseLevel(env)
		if err == nil {
			return parsed
		}
		fmt.Fprintf(errOut, "ignoring LOGGER_LEVEL: %v\n", err)
	}
	return InfoLevel
}

func resolveTrace(trace bool, errOut io.Writer) bool {
	if trace {
		return true
	}
	if env := os.Getenv("LOGGER_TRACE"); env != "" {
		enabled, err := strconv.ParseBool(env)
		if err == nil {
			return enabled
		}
		fmt.Fprintf(errOut, "ignoring LOGGER_TRACE %q: %v\n", env, err)
	}
	return false
}

// SetLevel replaces the threshold. The value is not validated.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int64(level))
}

// SetTrace replaces the default trace flag.
func (l *Logger) SetTrace(enabled bool) {
	l.trace.Store(enabled)
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// TraceEnabled reports whether every message carries a stack trace.
func (l *Logger) TraceEnabled() bool {
	return l.trace.Load()
}

// Enabled reports whether a message at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// Debug logs msg and args at DebugLevel.
func (l *Logger) Debug(msg any, args ...any) {
	l.log(DebugLevel, CallOptions{}, msg, args)
}

// Info logs msg and args at InfoLevel.
func (l *Logger) Info(msg any, args ...any) {
	l.log(InfoLevel, CallOptions{}, msg, args)
}

// Warn logs msg and args at WarnLevel.
func (l *Logger) Warn(msg any, args ...any) {
	l.log(WarnLevel, CallOptions{}, msg, args)
}

// Error logs msg and args at ErrorLevel.
func (l *Logger) Error(msg any, args ...any) {
	l.log(ErrorLevel, CallOptions{}, msg, args)
}

// Log logs msg and args at level.
//
// A primitive msg (string, bool or number) is printed on one line as
// "[LEVEL] msg location args...". Any other msg is dumped in full inside a
// block headed by "[LEVEL] location".
func (l *Logger) Log(level Level, msg any, args ...any) {
	l.log(level, CallOptions{}, msg, args)
}

// LogWith is Log with per-call options.
//
//	log.LogWith(logger.CallOptions{Trace: true}, logger.WarnLevel, "low memory")
func (l *Logger) LogWith(opts CallOptions, level Level, msg any, args ...any) {
	l.log(level, opts, msg, args)
}

func (l *Logger) log(level Level, opts CallOptions, msg any, args []any) {
	if !l.Enabled(level) {
		return
	}
	trace := opts.Trace || l.TraceEnabled()

	location := l.locator.Caller()
	var stack string
	if trace {
		stack = l.locator.Stack()
	}

	label := l.label(level)
	var g group
	if isPrimitive(msg) {
		line := joinNonEmpty(label, fmt.Sprint(msg), location)
		if !trace {
			g.println(joinNonEmpty(line, formatArgs(args)))
		} else {
			g.begin(line)
			g.println(joinNonEmpty(line, formatArgs(args)))
			g.trace(stack)
			g.end()
		}
	} else {
		g.begin(joinNonEmpty(label, location))
		g.println(dumper.Sdump(msg))
		if len(args) > 0 {
			g.println(formatArgs(args))
		}
		if trace {
			g.trace(stack)
		}
		g.end()
	}

	l.write(level, g.String())
}

func (l *Logger) write(level Level, block string) {
	out := l.sinkFor(level)
	if l.syslog {
		out = &syslogPrefixWriter{w: out, prefix: syslogPrefixForLevel(level)}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(out, block)
}

// sinkFor routes warnings and errors to stderr; everything else, including
// levels without a mapping, goes to stdout.
func (l *Logger) sinkFor(level Level) io.Writer {
	switch level {
	case WarnLevel, ErrorLevel:
		return l.stderr
	default:
		return l.stdout
	}
}

func (l *Logger) label(level Level) string {
	if l.colorize {
		if color, ok := labelColors[level]; ok {
			return fmt.Sprintf("%s[%s]%s", color, level, colorReset)
		}
	}
	return "[" + level.String() + "]"
}

// isPrimitive reports whether v prints on a single line as is.
func isPrimitive(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// formatArgs renders args space-separated, in order.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if isPrimitive(arg) {
			parts = append(parts, fmt.Sprint(arg))
			continue
		}
		parts = append(parts, dumper.Sprint(arg))
	}
	return strings.Join(parts, " ")
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// group assembles an output block, indenting lines by nesting depth.
type group struct {
	b     strings.Builder
	depth int
}

func (g *group) println(s string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		g.b.WriteString(strings.Repeat(groupIndent, g.depth))
		g.b.WriteString(line)
		g.b.WriteByte('\n')
	}
}

func (g *group) begin(header string) {
	g.println(header)
	g.depth++
}

func (g *group) end() {
	if g.depth > 0 {
		g.depth--
	}
}

func (g *group) trace(stack string) {
	g.begin("Trace")
	if stack != "" {
		g.println(stack)
	}
	g.end()
}

func (g *group) String() string {
	return g.b.String()
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixForLevel(level Level) string {
	switch level {
	case DebugLevel:
		return "<7>"
	case InfoLevel:
		return "<6>"
	case WarnLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	default:
		return ""
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" {
		return s.w.Write(data)
	}
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}
