package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger records JSON log entries written during a test.
type TestLogger struct {
	Logger *zerolog.Logger
	buf    bytes.Buffer
}

// NewTestLogger returns a logger that records every level. The global
// level is restored when the test ends.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tl := &TestLogger{}
	logger := zerolog.New(&tl.buf).Level(zerolog.TraceLevel)
	tl.Logger = &logger
	return tl
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.buf.String()
}

// Entries decodes the recorded entries. Lines that are not JSON are skipped.
func (tl *TestLogger) Entries() []map[string]any {
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(tl.Output()), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) == nil {
			out = append(out, entry)
		}
	}
	return out
}

// Count returns the number of recorded entries.
func (tl *TestLogger) Count() int {
	return len(tl.Entries())
}

// Reset discards recorded entries.
func (tl *TestLogger) Reset() {
	tl.buf.Reset()
}

// AssertContains fails t unless some entry contains substr.
func (tl *TestLogger) AssertContains(t testing.TB, substr string) {
	t.Helper()
	if !strings.Contains(tl.Output(), substr) {
		t.Errorf("log does not contain %q\n%s", substr, tl.Output())
	}
}

// AssertNotContains fails t if any entry contains substr.
func (tl *TestLogger) AssertNotContains(t testing.TB, substr string) {
	t.Helper()
	if strings.Contains(tl.Output(), substr) {
		t.Errorf("log unexpectedly contains %q\n%s", substr, tl.Output())
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
