// Package datefmt reconciles date strings that arrive in different shapes
// (backend timestamps, manual input, values already formatted for display)
// into one display format, without re-formatting values that already match.
//
// Formats are written as day/month/year patterns (YYYY, MM, DD, H, mm, ss,
// SSS, Z) and translated to Go layouts.
package datefmt

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the canonical display format for dates.
	DateFormat = "DD/MM/YYYY"

	// DateTimeFormat is the canonical display format for timestamps.
	DateTimeFormat = "DD/MM/YYYY H:mm:ss"

	// WireLayout is the Go layout used for timestamps on the wire.
	WireLayout = "2006-01-02T15:04:05"
)

// ErrUnrecognized is returned by Parse when no known format matches.
var ErrUnrecognized = errors.New("unrecognized date")

// candidate is one entry of the source format priority list.
// Extra holds additional Go layouts that belong to the same entry.
type candidate struct {
	format string
	extra  []string
}

// candidates are tried in order and the first valid parse wins.
// The order is a tie-break between day-first and month-first shapes; do not
// reorder.
var candidates = []candidate{
	{format: "YYYY-MM-DDTHH:mm:ss"},
	{format: "YYYY-MM-DDTHH:mm:ss.SSSZ", extra: []string{time.RFC3339}},
	{format: "DD/MM/YYYY H:mm:ss"},
	{format: "YYYY-MM-DD"},
	{format: "MM/DD/YYYY"},
	{format: "DD-MM-YYYY"},
	{format: "DD/MM/YYYY"},
}

// tokens maps pattern tokens to Go layout elements. Longer tokens come first
// so "YYYY" is never read as two "YY".
var tokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"HH", "15",
	"H", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	"s", "5",
	"SSS", "000",
	"Z", "Z07:00",
)

// hourMark stands in for the unpadded hour when formatting. Go layouts have
// no unpadded 24-hour element, so Format fills it in afterwards.
const hourMark = "\x00"

// formatTokens is tokens with "H" mapped to hourMark.
var formatTokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"HH", "15",
	"H", hourMark,
	"mm", "04",
	"m", "4",
	"ss", "05",
	"s", "5",
	"SSS", "000",
	"Z", "Z07:00",
)

// Layout translates a pattern such as "DD/MM/YYYY H:mm:ss" into a Go layout.
// An empty pattern yields the layout of DateFormat.
func Layout(format string) string {
	if format == "" {
		format = DateFormat
	}
	return tokens.Replace(format)
}

// IsFormatted reports whether value parses strictly as format.
func IsFormatted(value, format string) bool {
	if value == "" {
		return false
	}
	_, err := time.Parse(Layout(format), value)
	return err == nil
}

// Normalize returns value rendered in format (DateFormat when empty).
//
// A value that already matches format is returned unchanged. Otherwise the
// candidate formats are tried in priority order and the first match is
// reformatted. A value that matches nothing is returned unchanged.
func Normalize(value, format string) string {
	if value == "" {
		return value
	}
	if format == "" {
		format = DateFormat
	}
	if IsFormatted(value, format) {
		return value
	}
	t, err := parseCandidates(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return Format(t, format)
}

// NormalizeDateTime is Normalize with DateTimeFormat as the target.
func NormalizeDateTime(value string) string {
	return Normalize(value, DateTimeFormat)
}

// Parse reads a value typed by an operator or sent by a client. Values in
// the display formats are read as displayed (day first); anything else goes
// through the candidate list. Values without a zone are read as UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, format := range []string{DateTimeFormat, DateFormat} {
		if t, err := time.Parse(Layout(format), value); err == nil {
			return t, nil
		}
	}
	return parseCandidates(value)
}

// parseCandidates reads value with the first candidate format that accepts it.
func parseCandidates(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrUnrecognized
	}
	for _, c := range candidates {
		if t, err := time.Parse(Layout(c.format), value); err == nil {
			return t, nil
		}
		for _, layout := range c.extra {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, ErrUnrecognized
}

// Format renders t with a pattern such as DateTimeFormat. "H" renders the
// hour without padding.
func Format(t time.Time, format string) string {
	if format == "" {
		format = DateFormat
	}
	out := t.Format(formatTokens.Replace(format))
	return strings.ReplaceAll(out, hourMark, strconv.Itoa(t.Hour()))
}
