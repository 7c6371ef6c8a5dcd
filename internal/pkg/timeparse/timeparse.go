package timeparse

import (
	"errors"
	"time"
)

// Accepted timestamp layouts, most specific first. The minute-precision layout
// matches what HTML datetime-local inputs submit.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var ErrBadTimestamp = errors.New("unrecognized timestamp")

// Parse tries the accepted layouts in order.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}
