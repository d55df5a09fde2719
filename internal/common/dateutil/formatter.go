package dateutil

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
)

// Today returns the current UTC date in the ledger posting-date layout.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// FormatNullableTime formats a time pointer, falling back to an empty string.
func FormatNullableTime(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	if layout == "" {
		layout = time.RFC3339
	}
	return t.Format(layout)
}
