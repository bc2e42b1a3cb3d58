package entities

import (
	"fmt"
	"strings"
	"time"
)

// FlexTime tolerates the mixed date formats found in persisted records:
// RFC3339 instants, zone-less date-times, and bare YYYY-MM-DD dates
// (normalized to midnight local). It always marshals back to RFC3339, so
// rewritten collections converge on one canonical shape.
type FlexTime struct{ time.Time }

func NewFlexTime(t time.Time) FlexTime { return FlexTime{t} }

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseFlexTime parses any of the tolerated formats.
func ParseFlexTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseFlexTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
