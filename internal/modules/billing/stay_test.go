package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestBillableDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same window no bump", "2024-01-10T15:00", "2024-01-11T11:00", 1},
		{"both cutoffs bump", "2024-01-10T10:00", "2024-01-12T13:00", 4},
		{"early check-in only", "2024-01-10T09:00", "2024-01-12T11:30", 3},
		{"late check-out only", "2024-01-10T14:00", "2024-01-12T12:30", 3},
		{"noon sharp is not late", "2024-01-10T14:00", "2024-01-12T12:00", 2},
		{"same day inside window floors to one", "2024-01-10T15:00", "2024-01-10T11:00", 1},
		{"same day both bumps", "2024-01-10T08:00", "2024-01-10T20:00", 2},
		{"month boundary", "2024-01-31T14:00", "2024-02-02T11:00", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BillableDays(ts(t, tc.start), ts(t, tc.end)))
		})
	}
}

func TestBillableDays_NeverBelowOne(t *testing.T) {
	starts := []string{"2024-01-10T15:00", "2024-01-10T00:00", "2024-01-10T13:59"}
	ends := []string{"2024-01-10T11:00", "2024-01-10T12:00", "2024-01-10T23:59"}

	for _, s := range starts {
		for _, e := range ends {
			assert.GreaterOrEqual(t, BillableDays(ts(t, s), ts(t, e)), 1, "start=%s end=%s", s, e)
		}
	}
}

func TestParseStayRange(t *testing.T) {
	start, end, err := ParseStayRange("2024-01-10T15:00", "2024-01-11T11:00:00")
	assert.NoError(t, err)
	assert.Equal(t, 15, start.Hour())
	assert.Equal(t, 11, end.Hour())

	_, _, err = ParseStayRange("soon", "2024-01-11T11:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = ParseStayRange("2024-01-10T15:00", "later")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
