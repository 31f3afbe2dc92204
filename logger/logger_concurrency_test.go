package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_GroupedBlocksStayIntact verifies that the mutex keeps traced
// blocks from different goroutines from interleaving.
func TestConcurrency_GroupedBlocksStayIntact(t *testing.T) {
	l, _, stderrBuf := newTestLogger(t, DebugLevel)

	const numGoroutines = 50
	const messagesPerGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.LogWith(CallOptions{Trace: true}, WarnLevel, fmt.Sprintf("g-%d-%d", id, j))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(stderrBuf.String(), "\n"), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine*4)
	for i := 0; i < len(lines); i += 4 {
		header := lines[i]
		require.True(t, strings.HasPrefix(header, "[WARN] g-"), "unexpected block header %q", header)
		assert.Equal(t, "  "+header, lines[i+1])
		assert.Equal(t, "  Trace", lines[i+2])
		assert.Equal(t, "    main.main (app.go:42)", lines[i+3])
	}
}

// TestConcurrency_SettersRaceWithLog exercises last-write-wins updates while logging.
func TestConcurrency_SettersRaceWithLog(t *testing.T) {
	t.Setenv("JOURNAL_STREAM", "")
	var stdoutBuf, stderrBuf bytes.Buffer
	l := New(Config{Level: DebugLevel, Stdout: &stdoutBuf, Stderr: &stderrBuf, Locator: testLocator})

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			l.SetLevel(AllLevels()[i%len(AllLevels())])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			l.SetTrace(i%2 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			l.Info("tick", i)
			l.Error("tock", i)
		}
	}()
	wg.Wait()

	l.SetLevel(WarnLevel)
	l.SetTrace(false)
	stdoutBuf.Reset()
	stderrBuf.Reset()

	l.Info("after")
	l.Warn("after")

	assert.Empty(t, stdoutBuf.String())
	assert.Equal(t, "[WARN] after app.go:42\n", stderrBuf.String())
}
