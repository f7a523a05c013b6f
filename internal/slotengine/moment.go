package slotengine

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"

	minutesPerDay = 24 * 60
	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized Date (2025-01-32 becomes 2025-02-01).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ordinal is the number of days since 1970-01-01.
func (d Date) ordinal() int64 {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

func dateFromOrdinal(n int64) Date {
	return DateOf(time.Unix(n*secondsPerDay, 0).UTC())
}

func (d Date) AddDays(n int) Date {
	return dateFromOrdinal(d.ordinal() + int64(n))
}

// Weekday returns the day of week, 0 = Sunday.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Before(o Date) bool { return d.ordinal() < o.ordinal() }
func (d Date) After(o Date) bool  { return d.ordinal() > o.ordinal() }
func (d Date) Equal(o Date) bool  { return d.ordinal() == o.ordinal() }

// DaysUntil returns the signed number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.ordinal() - d.ordinal())
}

// At returns the moment minute minutes after the start of d.
func (d Date) At(minute int) Moment {
	return Moment{Date: d}.AddMinutes(minute)
}

// In returns local midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Moment is a local wall-clock instant with minute precision.
// Minute is always kept in [0, 1440).
type Moment struct {
	Date   Date
	Minute int
}

// FromTime truncates t to the minute in t's own location.
func FromTime(t time.Time) Moment {
	return Moment{Date: DateOf(t), Minute: t.Hour()*60 + t.Minute()}
}

// FromTimeCeil rounds t up to the next whole minute when it carries seconds.
// Used for "now" so that a notice threshold is never earlier than the real instant.
func FromTimeCeil(t time.Time) Moment {
	m := FromTime(t)
	if t.Second() != 0 || t.Nanosecond() != 0 {
		m = m.AddMinutes(1)
	}
	return m
}

func (m Moment) abs() int64 {
	return m.Date.ordinal()*minutesPerDay + int64(m.Minute)
}

func momentFromAbs(n int64) Moment {
	day := n / minutesPerDay
	minute := n % minutesPerDay
	if minute < 0 {
		minute += minutesPerDay
		day--
	}
	return Moment{Date: dateFromOrdinal(day), Minute: int(minute)}
}

// AddMinutes shifts m by n minutes, carrying across midnight.
func (m Moment) AddMinutes(n int) Moment {
	return momentFromAbs(m.abs() + int64(n))
}

func (m Moment) Before(o Moment) bool { return m.abs() < o.abs() }
func (m Moment) After(o Moment) bool  { return m.abs() > o.abs() }
func (m Moment) Equal(o Moment) bool  { return m.abs() == o.abs() }

// Clock formats the time of day as "HH:mm".
func (m Moment) Clock() string {
	return fmt.Sprintf("%02d:%02d", m.Minute/60, m.Minute%60)
}

// Time converts m to an absolute instant in loc.
func (m Moment) Time(loc *time.Location) time.Time {
	return time.Date(m.Date.Year, m.Date.Month, m.Date.Day, m.Minute/60, m.Minute%60, 0, 0, loc)
}

func (m Moment) String() string {
	return m.Date.String() + " " + m.Clock()
}
