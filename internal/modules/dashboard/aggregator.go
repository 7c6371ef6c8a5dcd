package dashboard

import (
	"math"
	"time"

	"happyhouse/internal/domain"
)

type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Point is one chart bucket.
type Point struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Bucketize folds paid invoices into a fixed set of buckets for the chosen
// granularity. Invoices outside the bucket range are dropped; the chart
// windows are fixed.
//
//   - week:  the 7 calendar days ending today, oldest first
//   - month: January..December of the current year
//   - year:  the trailing 5 calendar years, oldest first
func Bucketize(invoices []domain.Invoice, g Granularity, now time.Time) []Point {
	switch g {
	case GranularityWeek:
		return bucketizeWeek(invoices, now)
	case GranularityYear:
		return bucketizeYear(invoices, now)
	default:
		return bucketizeMonth(invoices, now)
	}
}

func bucketizeWeek(invoices []domain.Invoice, now time.Time) []Point {
	const days = 7

	points := make([]Point, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1)
		label := day.Format("2006-01-02")
		points[i] = Point{Label: label}
		index[label] = i
	}

	for _, inv := range invoices {
		if i, ok := index[inv.IssuedAt.Format("2006-01-02")]; ok {
			points[i].Amount += inv.Amount
		}
	}
	return points
}

func bucketizeMonth(invoices []domain.Invoice, now time.Time) []Point {
	points := make([]Point, 12)
	for m := time.January; m <= time.December; m++ {
		points[m-1] = Point{Label: m.String()[:3]}
	}

	for _, inv := range invoices {
		if inv.IssuedAt.Year() != now.Year() {
			continue
		}
		points[inv.IssuedAt.Month()-1].Amount += inv.Amount
	}
	return points
}

func bucketizeYear(invoices []domain.Invoice, now time.Time) []Point {
	const years = 5

	points := make([]Point, years)
	first := now.Year() - years + 1
	for i := 0; i < years; i++ {
		points[i] = Point{Label: time.Date(first+i, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")}
	}

	for _, inv := range invoices {
		y := inv.IssuedAt.Year()
		if y < first || y > now.Year() {
			continue
		}
		points[y-first].Amount += inv.Amount
	}
	return points
}

// Window is one trailing comparison period for growth reporting.
type Window struct {
	Label string
	Days  int
}

// DefaultWindows are the dashboard's stock comparison periods.
var DefaultWindows = []Window{
	{Label: "week", Days: 7},
	{Label: "month", Days: 30},
	{Label: "year", Days: 365},
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

type GrowthPoint struct {
	Label    string    `json:"label"`
	Current  int64     `json:"current"`
	Previous int64     `json:"previous"`
	Percent  float64   `json:"percent"`
	Trend    Direction `json:"trend"`
}

// Growth compares each trailing window [now-d, now) against the window
// before it. A previous total of zero reads as +100% when anything was
// earned, 0% when both periods are empty. Percent is rounded to one decimal.
func Growth(invoices []domain.Invoice, windows []Window, now time.Time) []GrowthPoint {
	out := make([]GrowthPoint, 0, len(windows))
	for _, w := range windows {
		cutoff := now.AddDate(0, 0, -w.Days)
		floor := now.AddDate(0, 0, -2*w.Days)

		var current, previous int64
		for _, inv := range invoices {
			t := inv.IssuedAt
			switch {
			case !t.Before(cutoff) && t.Before(now):
				current += inv.Amount
			case !t.Before(floor) && t.Before(cutoff):
				previous += inv.Amount
			}
		}

		var percent float64
		switch {
		case previous > 0:
			percent = float64(current-previous) / float64(previous) * 100
		case current > 0:
			percent = 100
		}
		percent = math.Round(percent*10) / 10

		trend := DirectionFlat
		if percent > 0 {
			trend = DirectionUp
		} else if percent < 0 {
			trend = DirectionDown
		}

		out = append(out, GrowthPoint{
			Label:    w.Label,
			Current:  current,
			Previous: previous,
			Percent:  percent,
			Trend:    trend,
		})
	}
	return out
}
