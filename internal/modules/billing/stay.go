package billing

import (
	"time"

	"happyhouse/internal/pkg/timeparse"
)

// Hospitality day-counting convention: rooms turn over at 14:00 check-in /
// 12:00 check-out.
const (
	checkInHour  = 14
	checkOutHour = 12
)

// BillableDays counts billable day blocks between check-in and check-out.
// Base count is whole calendar days between the two dates; starting before
// 14:00 pulls in one extra block, ending after 12:00 extends into the next.
// Never less than 1: a same-day 15:00 to 11:00 stay still bills one day.
func BillableDays(start, end time.Time) int {
	s := midnight(start)
	e := midnight(end)
	days := int(e.Sub(s).Hours() / 24)

	if start.Hour() < checkInHour {
		days++
	}
	if afterCheckout(end) {
		days++
	}

	if days < 1 {
		days = 1
	}
	return days
}

// ParseStayRange parses the raw form timestamps for a stay.
func ParseStayRange(startRaw, endRaw string) (start, end time.Time, err error) {
	start, err = timeparse.Parse(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidInput
	}
	end, err = timeparse.Parse(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidInput
	}
	return start, end, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// afterCheckout is true strictly after 12:00:00.
func afterCheckout(t time.Time) bool {
	if t.Hour() != checkOutHour {
		return t.Hour() > checkOutHour
	}
	return t.Minute() > 0 || t.Second() > 0 || t.Nanosecond() > 0
}
