package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"subs_manager/internal/entity"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DirWriter stores each calendar event as an .ics file in a directory
type DirWriter struct {
	dir string
	now func() time.Time
	log *slog.Logger
}

func NewDirWriter(dir string, log *slog.Logger) *DirWriter {
	if log == nil {
		log = slog.Default()
	}
	return &DirWriter{dir: dir, now: time.Now, log: log}
}

// AddEvent writes ev to <dir>/<uid>.ics, replacing an earlier export of the same event
func (w *DirWriter) AddEvent(ctx context.Context, ev entity.CalendarEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.UID == "" {
		return fmt.Errorf("add event: empty uid")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("add event: create dir: %w", err)
	}

	path := filepath.Join(w.dir, FileName(ev.UID))
	tmp, err := os.CreateTemp(w.dir, ".event-*.ics")
	if err != nil {
		return fmt.Errorf("add event: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(Render(ev, w.now())); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("add event: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("add event: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("add event: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("add event: rename: %w", err)
	}

	w.log.Info("calendar event written", slog.String("uid", ev.UID), slog.String("path", path))
	return nil
}

// FileName maps an event UID to a safe file name
func FileName(uid string) string {
	return unsafeName.ReplaceAllString(uid, "_") + ".ics"
}
