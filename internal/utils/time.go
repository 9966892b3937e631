package utils

import (
	"time"
)

// ISOLayout matches JavaScript's Date.prototype.toISOString, so stored
// timestamps sort lexically in chronological order.
const ISOLayout = "2006-01-02T15:04:05.000Z"

func FormatTimeISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func ParseTimeISO(timeStr string) (time.Time, error) {
	if t, err := time.Parse(ISOLayout, timeStr); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, timeStr)
}
