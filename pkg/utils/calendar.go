package utils

import "time"

// MaxPauseDays is the lifetime pause allowance per subscription.
const MaxPauseDays = 6

const dayLayout = "2006-01-02"

// All day-granularity values in the system are normalized to UTC midnight.
// Deliveries happen every day except Sunday.

// Day truncates t to UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func NextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

func IsSunday(d time.Time) bool {
	return d.Weekday() == time.Sunday
}

// SkipSunday returns d itself when d is a delivery day, otherwise the Monday after.
func SkipSunday(d time.Time) time.Time {
	for IsSunday(d) {
		d = NextDay(d)
	}
	return d
}

// NextDeliveryDay returns the first delivery day strictly after d.
func NextDeliveryDay(d time.Time) time.Time {
	return SkipSunday(NextDay(d))
}

// DeliveryDays lists every non-Sunday day in [start, end] inclusive.
func DeliveryDays(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	var days []time.Time
	for d := start; !d.After(end); d = NextDay(d) {
		if !IsSunday(d) {
			days = append(days, d)
		}
	}
	return days
}

// AddDeliveryDays returns the date of the n-th delivery day counting
// SkipSunday(start) as the first. n must be >= 1.
func AddDeliveryDays(start time.Time, n int) time.Time {
	d := SkipSunday(Day(start))
	for i := 1; i < n; i++ {
		d = NextDeliveryDay(d)
	}
	return d
}

func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

func FormatDay(d time.Time) string {
	return d.UTC().Format(dayLayout)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
