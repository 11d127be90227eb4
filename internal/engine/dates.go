package engine

import "time"

// timestampFormats are tried in order when parsing record timestamps.
// Exports vary between full RFC 3339 with fractional seconds and bare dates.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a record timestamp. The boolean reports whether
// the value parsed; callers choose their own fallback policy (filtering
// and sorting substitute the epoch, aggregation uses an invalid-date
// bucket — the asymmetry is deliberate).
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// timestampOrEpoch parses a timestamp, substituting the Unix epoch for
// absent or unparsable values.
func timestampOrEpoch(s string) time.Time {
	if t, ok := ParseTimestamp(s); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// invalidDateKey is the month bucket for conversations whose creation
// date does not parse.
const invalidDateKey = "invalid-date"

// monthKey returns the YYYY-MM calendar month of a timestamp string, or
// invalidDateKey when it does not parse.
func monthKey(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return invalidDateKey
	}
	return t.Format("2006-01")
}
