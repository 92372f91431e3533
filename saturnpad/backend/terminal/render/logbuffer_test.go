package render

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferWraps(t *testing.T) {
	lb := NewLogBuffer(3)
	assert.Empty(t, lb.Recent(0))

	for _, msg := range []string{"a", "b", "c", "d"} {
		lb.Add(LogEntry{Message: msg})
	}

	recent := lb.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "c", recent[1].Message)
	assert.Equal(t, "b", recent[2].Message)

	assert.Len(t, lb.Recent(2), 2)
}

func TestHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	logger := slog.New(NewHandler(lb, slog.LevelInfo))

	logger.Debug("hidden")
	logger.With("scan", 3).WithGroup("pad").Info("Output changed", "to", "Up")

	recent := lb.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "Output changed scan=3 pad.to=Up", recent[0].Message)
	assert.Equal(t, slog.LevelInfo, recent[0].Level)
}

func TestFormatLogEntry(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
	got := FormatLogEntry(LogEntry{Time: ts, Level: slog.LevelWarn, Message: "late tick"})
	assert.Equal(t, "13:04:05 [WRN] late tick", got)
}
