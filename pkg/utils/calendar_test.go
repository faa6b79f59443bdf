package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestDayNormalizesToUTCMidnight(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	d := Day(time.Date(2024, 6, 10, 23, 45, 0, 0, ist))

	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2024-06-10", FormatDay(d))
	assert.True(t, SameDay(d, mustDay(t, "2024-06-10")))
}

func TestSkipSunday(t *testing.T) {
	// 2024-06-02 is a Sunday.
	assert.Equal(t, "2024-06-03", FormatDay(SkipSunday(mustDay(t, "2024-06-02"))))
	assert.Equal(t, "2024-06-03", FormatDay(SkipSunday(mustDay(t, "2024-06-03"))))
}

func TestNextDeliveryDay(t *testing.T) {
	// Saturday jumps over Sunday to Monday.
	assert.Equal(t, "2024-06-10", FormatDay(NextDeliveryDay(mustDay(t, "2024-06-08"))))
	// Midweek is just the next day.
	assert.Equal(t, "2024-06-12", FormatDay(NextDeliveryDay(mustDay(t, "2024-06-11"))))
}

func TestDeliveryDaysExcludesSundays(t *testing.T) {
	days := DeliveryDays(mustDay(t, "2024-06-03"), mustDay(t, "2024-07-02"))

	// 30 calendar days minus the Sundays 06-09, 06-16, 06-23 and 06-30.
	require.Len(t, days, 26)
	for _, d := range days {
		assert.False(t, IsSunday(d), "got Sunday %s", FormatDay(d))
	}
	assert.Equal(t, "2024-06-03", FormatDay(days[0]))
	assert.Equal(t, "2024-07-02", FormatDay(days[len(days)-1]))
}

func TestAddDeliveryDays(t *testing.T) {
	// Counting SkipSunday(start) as day one, 26 delivery days from 06-03
	// must land on the last element of the DeliveryDays range above.
	assert.Equal(t, "2024-07-02", FormatDay(AddDeliveryDays(mustDay(t, "2024-06-03"), 26)))

	// A Sunday start slides to Monday first.
	assert.Equal(t, "2024-06-03", FormatDay(AddDeliveryDays(mustDay(t, "2024-06-02"), 1)))

	// Crossing one Sunday stretches the calendar span by a day.
	assert.Equal(t, "2024-06-11", FormatDay(AddDeliveryDays(mustDay(t, "2024-06-05"), 6)))
}

func TestParseDayRejectsGarbage(t *testing.T) {
	_, err := ParseDay("10-06-2024")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}
