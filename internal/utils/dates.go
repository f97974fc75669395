package utils

import "time"

// FormatTimestamp renders a UTC RFC3339 timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
