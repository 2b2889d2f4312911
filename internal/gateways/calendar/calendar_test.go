package calendar

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subs_manager/internal/entity"
)

var testLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func testEvent() entity.CalendarEvent {
	return entity.CalendarEvent{
		UID:         "0b6f5a51-3a39-4b0f-9a5e-2d3c8b1c0e11-20260117@subs-manager",
		Title:       "Netflix Billing Date",
		Description: "Netflix Monthly subscription, 9.99",
		Start:       time.Date(2026, time.January, 17, 0, 0, 0, 0, time.UTC),
		Duration:    time.Hour,
		AlarmOffset: -24 * time.Hour,
	}
}

func TestRender(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	out := string(Render(testEvent(), now))

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "DTSTAMP:20260110T120000Z\r\n")
	assert.Contains(t, out, "DTSTART:20260117T000000\r\n")
	assert.Contains(t, out, "DTEND:20260117T010000\r\n")
	assert.Contains(t, out, "SUMMARY:Netflix Billing Date\r\n")
	assert.Contains(t, out, `DESCRIPTION:Netflix Monthly subscription\, 9.99`+"\r\n")
	assert.Contains(t, out, "TRIGGER:-P1D\r\n")
}

// Users west of UTC must still see the billing day, not the evening before.
func TestRender_FloatingStart(t *testing.T) {
	out := string(Render(testEvent(), time.Now()))

	for _, line := range strings.Split(out, "\r\n") {
		if strings.HasPrefix(line, "DTSTART") || strings.HasPrefix(line, "DTEND") {
			assert.False(t, strings.HasSuffix(line, "Z"), line)
		}
	}

	ev := testEvent()
	// same calendar day expressed in another zone
	ev.Start = time.Date(2026, time.January, 16, 16, 0, 0, 0, time.FixedZone("PST", -8*3600))
	assert.Contains(t, string(Render(ev, time.Now())), "DTSTART:20260117T000000\r\n")
}

func TestRender_NoAlarm(t *testing.T) {
	ev := testEvent()
	ev.AlarmOffset = 0
	out := string(Render(ev, time.Now()))
	assert.NotContains(t, out, "VALARM")
}

func TestRender_FoldsLongLines(t *testing.T) {
	ev := testEvent()
	ev.Title = strings.Repeat("Ünïcode ", 20)
	out := Render(ev, time.Now())

	for _, line := range bytes.Split(out, []byte("\r\n")) {
		assert.LessOrEqual(t, len(line), maxLineOcts)
	}
	unfolded := strings.ReplaceAll(string(out), "\r\n ", "")
	assert.Contains(t, unfolded, "SUMMARY:"+ev.Title)
}

func TestFormatDuration(t *testing.T) {
	tcases := []struct {
		In   time.Duration
		Want string
	}{
		{In: -24 * time.Hour, Want: "-P1D"},
		{In: 48 * time.Hour, Want: "P2D"},
		{In: time.Hour, Want: "PT1H"},
		{In: -(90 * time.Minute), Want: "-PT1H30M"},
		{In: 25*time.Hour + 5*time.Second, Want: "P1DT1H5S"},
		{In: 0, Want: "PT0S"},
	}
	for _, tc := range tcases {
		t.Run(tc.Want, func(t *testing.T) {
			assert.Equal(t, tc.Want, formatDuration(tc.In))
		})
	}
}

func TestDirWriter_AddEvent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "calendar")
	w := NewDirWriter(dir, testLog)

	ev := testEvent()
	require.NoError(t, w.AddEvent(context.Background(), ev))
	// same event again replaces the file
	require.NoError(t, w.AddEvent(context.Background(), ev))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0b6f5a51-3a39-4b0f-9a5e-2d3c8b1c0e11-20260117_subs-manager.ics", entries[0].Name())

	body, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(body), "SUMMARY:Netflix Billing Date")
}

func TestDirWriter_Errors(t *testing.T) {
	t.Run("empty uid", func(t *testing.T) {
		w := NewDirWriter(t.TempDir(), testLog)
		assert.Error(t, w.AddEvent(context.Background(), entity.CalendarEvent{}))
	})

	t.Run("directory is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "taken")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
		w := NewDirWriter(file, testLog)
		assert.Error(t, w.AddEvent(context.Background(), testEvent()))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := NewDirWriter(t.TempDir(), testLog)
		assert.ErrorIs(t, w.AddEvent(ctx, testEvent()), context.Canceled)
	})
}
