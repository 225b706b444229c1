package entity

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// BackendTimeLayout is the format the backend serializes datetimes in.
const BackendTimeLayout = "2006-01-02 15:04:05"

var timestampLayouts = []string{
	BackendTimeLayout,
	time.RFC3339Nano,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a tolerant datetime: null, empty or unrecognised values
// decode to the zero time instead of failing the whole response.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		ts.Time = time.Time{}
		return nil
	}
	ts.Time = ParseTimestamp(s)
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(BackendTimeLayout))
}

// ParseTimestamp parses naive backend timestamps in the local zone.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
