package slotengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.November, 3), d)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2025-11-03", d.String())

	for _, bad := range []string{"", "03/11/2025", "2025-13-01", "2025-02-30"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2023-12-31", NewDate(2024, time.January, 1).AddDays(-1).String())
	assert.Equal(t, 2, d.DaysUntil(d.AddDays(2)))
}

func TestMoment_AddMinutesCarriesAcrossMidnight(t *testing.T) {
	m := NewDate(2025, time.November, 3).At(23*60 + 50)

	next := m.AddMinutes(20)
	assert.Equal(t, "2025-11-04 00:10", next.String())

	prev := NewDate(2025, time.November, 3).At(10).AddMinutes(-20)
	assert.Equal(t, "2025-11-02 23:50", prev.String())
	assert.True(t, prev.Before(m))
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2025, time.November, 3, 9, 14, 30, 0, loc)

	assert.Equal(t, "2025-11-03 09:14", FromTime(ts).String())
	assert.Equal(t, "2025-11-03 09:15", FromTimeCeil(ts).String())
	assert.Equal(t, "2025-11-03 09:14", FromTimeCeil(ts.Truncate(time.Minute)).String())
}

func TestMoment_TimeRoundTrip(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	m := NewDate(2025, time.November, 3).At(10 * 60)

	ts := m.Time(loc)
	assert.Equal(t, 10, ts.Hour())
	assert.True(t, FromTime(ts).Equal(m))
}
