// Package eventdate parses the free-text dates authored on events
// ("August 15, 2024", "August 15-17, 2024", "2024-08-15") and provides a
// strict Date type for content that carries a machine-readable start date.
package eventdate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ISOLayout is the canonical layout for Date.
const ISOLayout = "2006-01-02"

// layouts are tried in order; the first match wins.
var layouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan. 2, 2006",
	"Jan. 2 2006",
	"Monday, January 2, 2006",
	"2 January 2006",
	ISOLayout,
	"01/02/2006",
	"1/2/2006",
}

var (
	reOrdinal  = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)
	reSept     = regexp.MustCompile(`\bSept\b\.?`)
	reDayFirst = regexp.MustCompile(`^(\d{1,2}) ?[-–—] ?\d{1,2} (.+)$`)
	reYear     = regexp.MustCompile(`\b(\d{4})\b`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// Parse converts free text to a date. Ranges resolve to their first day; a
// year that appears only after the hyphen ("August 15-17, 2024") is carried
// over. Abbreviated months may carry a period ("Aug. 15, 2024", "Sept 15, 2024").
// ok is false when no known layout matches.
func Parse(text string) (t time.Time, ok bool) {
	s := normalize(text)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := tryLayouts(s); ok {
		return t, true
	}
	// "15-17 August 2024"
	if m := reDayFirst.FindStringSubmatch(s); m != nil {
		return tryLayouts(m[1] + " " + m[2])
	}

	idx := strings.IndexAny(s, "-–—")
	if idx <= 0 {
		return time.Time{}, false
	}
	head := strings.TrimSpace(strings.TrimRight(s[:idx], ", "))
	if !reYear.MatchString(head) {
		years := reYear.FindAllString(s[idx:], -1)
		if len(years) == 0 {
			return time.Time{}, false
		}
		year := years[len(years)-1]
		if t, ok := tryLayouts(head + ", " + year); ok {
			return t, true
		}
		return tryLayouts(head + " " + year)
	}
	return tryLayouts(head)
}

// MustParse is like Parse but panics when text is not a known date. Intended for tests and fixtures.
func MustParse(text string) time.Time {
	t, ok := Parse(text)
	if !ok {
		panic(fmt.Sprintf("eventdate: cannot parse %q", text))
	}
	return t
}

func normalize(text string) string {
	s := strings.TrimSpace(text)
	s = reOrdinal.ReplaceAllString(s, "$1")
	s = reSept.ReplaceAllString(s, "Sep")
	s = reSpaces.ReplaceAllString(s, " ")
	return s
}

func tryLayouts(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date is a calendar date validated when content is decoded. It accepts any
// text Parse understands and always encodes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String returns the ISO form, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(ISOLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Unknown formats are rejected.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("eventdate: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	t, ok := Parse(s)
	if !ok {
		return fmt.Errorf("eventdate: unrecognized date %q", s)
	}
	*d = Date{Time: t}
	return nil
}
