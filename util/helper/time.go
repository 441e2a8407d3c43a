package helper_util

import (
	"fmt"
	"time"
)

var queryDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseTime accepts an RFC3339 timestamp or a plain date. Plain dates are
// taken as midnight UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range queryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", s)
}
