package storage

import (
	"fmt"
	"time"
)

// storedTimeLayouts lists the formats found in databases written by older
// builds, tried in order.
var storedTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseStoredTime parses a timestamp column written by any build of this app.
// PRE: value is non-empty
// POST: Returns the parsed time or an error if no layout matches
func ParseStoredTime(value string) (time.Time, error) {
	for _, layout := range storedTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
