package normalize

import (
	"strings"
	"time"
)

// DisplayDateLayout is the sortable text form dates are rendered in.
const DisplayDateLayout = "2006-01-02"

// Day-first formats found in SIVEP-Gripe extracts, plus the ISO and dBase
// native (YYYYMMDD) forms.
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"20060102",
	"02/01/06",
	"2006-01-02T15:04:05",
}

// ParseDate parses s with day-first interpretation.
// Returns nil if the input is empty or unparseable.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate renders t in DisplayDateLayout, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DisplayDateLayout)
}
