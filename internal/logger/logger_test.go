package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("test message %s", "arg")

	assert.Equal(t, "[DEBUG] test message arg\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("test message")
	Info("info message")
	Section("Fetch")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Listing")

	assert.Equal(t, "\n=== Listing ===\n", buf.String())
}

func TestWarn_AlwaysWritten(t *testing.T) {
	buf := capture(t, false)

	Warn("fetch failed: %s", "timeout")

	assert.Equal(t, "[WARN] fetch failed: timeout\n", buf.String())
}

func TestError_AlwaysWritten(t *testing.T) {
	buf := capture(t, false)

	Error("boom")

	assert.Equal(t, "[ERROR] boom\n", buf.String())
}

func TestOutput(t *testing.T) {
	buf := capture(t, false)

	assert.Same(t, buf, Output())
}

func TestSetLevel(t *testing.T) {
	buf := capture(t, false)

	SetLevel(LevelError)
	Warn("hidden")
	Error("shown")
	assert.Equal(t, "[ERROR] shown\n", buf.String())
	assert.False(t, IsVerbose())

	SetLevel(LevelInfo)
	Debug("hidden")
	Info("shown")
	assert.Equal(t, "[ERROR] shown\n[INFO] shown\n", buf.String())
	assert.True(t, IsVerbose())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}
