package calendar

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"subs_manager/internal/entity"
)

const (
	prodID      = "-//subs-manager//billing reminders//EN"
	icsStamp    = "20060102T150405Z"
	// floating local time, read in the viewer's own zone
	icsFloating = "20060102T150405"
	maxLineOcts = 75
)

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// Render encodes ev as a single-event iCalendar document (RFC 5545).
// Billing dates are calendar days, so DTSTART and DTEND carry no zone and keep the same date everywhere.
func Render(ev entity.CalendarEvent, now time.Time) []byte {
	var b bytes.Buffer
	w := func(line string) {
		writeFolded(&b, line)
	}

	start := ev.Start.UTC()
	w("BEGIN:VCALENDAR")
	w("VERSION:2.0")
	w("PRODID:" + prodID)
	w("CALSCALE:GREGORIAN")
	w("METHOD:PUBLISH")
	w("BEGIN:VEVENT")
	w("UID:" + ev.UID)
	w("DTSTAMP:" + now.UTC().Format(icsStamp))
	w("DTSTART:" + start.Format(icsFloating))
	w("DTEND:" + start.Add(ev.Duration).Format(icsFloating))
	w("SUMMARY:" + textEscaper.Replace(ev.Title))
	if ev.Description != "" {
		w("DESCRIPTION:" + textEscaper.Replace(ev.Description))
	}
	if ev.AlarmOffset != 0 {
		w("BEGIN:VALARM")
		w("ACTION:DISPLAY")
		w("DESCRIPTION:" + textEscaper.Replace(ev.Title))
		w("TRIGGER:" + formatDuration(ev.AlarmOffset))
		w("END:VALARM")
	}
	w("END:VEVENT")
	w("END:VCALENDAR")
	return b.Bytes()
}

// writeFolded writes a content line, folding it at 75 octets without splitting a UTF-8 sequence
func writeFolded(b *bytes.Buffer, line string) {
	limit := maxLineOcts
	for len(line) > limit {
		cut := limit
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// continuation lines carry a leading space
		limit = maxLineOcts - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func isRuneStart(c byte) bool {
	return c&0xC0 != 0x80
}

// formatDuration renders d as an RFC 5545 duration value such as -P1D or PT1H30M
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	if d == 0 {
		return "PT0S"
	}
	if d%(24*time.Hour) == 0 {
		return fmt.Sprintf("%sP%dD", sign, d/(24*time.Hour))
	}

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString("P")
	if days := d / (24 * time.Hour); days > 0 {
		fmt.Fprintf(&sb, "%dD", days)
		d -= days * 24 * time.Hour
	}
	sb.WriteString("T")
	if h := d / time.Hour; h > 0 {
		fmt.Fprintf(&sb, "%dH", h)
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		fmt.Fprintf(&sb, "%dM", m)
		d -= m * time.Minute
	}
	if s := d / time.Second; s > 0 {
		fmt.Fprintf(&sb, "%dS", s)
	}
	return sb.String()
}
