package utils

import (
	"time"
)

// FormatTimestamp formats a store-assigned time in RFC 3339 with sub-second precision, in UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp parses a timestamp produced by FormatTimestamp
func ParseTimestamp(timeStr string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, timeStr)
}
