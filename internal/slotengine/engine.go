// Package slotengine computes bookable time slots from weekly availability
// windows, existing bookings and event parameters.
//
// The engine is pure: it performs no I/O, keeps no state between calls and is
// safe for concurrent use. All moments are local wall-clock values in the
// scheduling time zone; callers convert from and to time.Time at the boundary.
package slotengine

import (
	"errors"
	"fmt"
	"time"
)

const (
	// StepMinutes is the distance between two consecutive candidate starts.
	StepMinutes = 15

	// HorizonDays is the number of days, starting today, offered to guests.
	HorizonDays = 60
)

var (
	// ErrInvalidParams is returned when event parameters cannot produce slots.
	ErrInvalidParams = errors.New("slotengine: invalid event parameters")

	// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("slotengine: invalid date")
)

// Window is a recurring weekly availability interval.
// StartMinute and EndMinute are minutes since local midnight.
type Window struct {
	DayOfWeek   time.Weekday
	StartMinute int
	EndMinute   int
	IsActive    bool
}

func (w Window) valid() bool {
	return w.IsActive && w.StartMinute >= 0 && w.EndMinute <= minutesPerDay && w.StartMinute < w.EndMinute
}

// Params are the event type settings that shape slot generation.
type Params struct {
	DurationMinutes      int
	BeforeBufferMinutes  int
	AfterBufferMinutes   int
	MinimumNoticeMinutes int
}

// Validate rejects parameters that would make the candidate loop meaningless.
func (p Params) Validate() error {
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidParams, p.DurationMinutes)
	}
	if p.BeforeBufferMinutes < 0 || p.AfterBufferMinutes < 0 {
		return fmt.Errorf("%w: buffers must not be negative", ErrInvalidParams)
	}
	if p.MinimumNoticeMinutes < 0 {
		return fmt.Errorf("%w: minimum notice must not be negative", ErrInvalidParams)
	}
	return nil
}

// Booking is an existing reservation. Only confirmed bookings block slots.
type Booking struct {
	Start     Moment
	End       Moment
	Confirmed bool
}

// Slot is one candidate start time on the requested date.
type Slot struct {
	Start     Moment
	Available bool
}

// Time returns the "HH:mm" label of the slot.
func (s Slot) Time() string {
	return s.Start.Clock()
}

// Engine holds the tunable step and horizon. The zero value is not usable; use New.
type Engine struct {
	step    int
	horizon int
}

// Option configures an Engine.
type Option func(*Engine)

// WithStep overrides the candidate step. Non-positive values are ignored.
func WithStep(minutes int) Option {
	return func(e *Engine) {
		if minutes > 0 {
			e.step = minutes
		}
	}
}

// WithHorizon overrides the number of days returned by ComputeAvailableDays.
func WithHorizon(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.horizon = days
		}
	}
}

// New returns an engine with the default step and horizon unless overridden by opts.
func New(opts ...Option) *Engine {
	e := &Engine{step: StepMinutes, horizon: HorizonDays}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Horizon is the number of days, starting today, that can be booked.
func (e *Engine) Horizon() int { return e.horizon }

// ComputeAvailableDays lists the dates in [reference, reference+horizon) whose
// weekday has at least one active window. The result is ascending.
func (e *Engine) ComputeAvailableDays(windows []Window, reference Date) []Date {
	var weekdays [7]bool
	hasAny := false
	for _, w := range windows {
		if w.IsActive && w.DayOfWeek >= time.Sunday && w.DayOfWeek <= time.Saturday {
			weekdays[w.DayOfWeek] = true
			hasAny = true
		}
	}

	days := make([]Date, 0)
	if !hasAny {
		return days
	}

	for i := 0; i < e.horizon; i++ {
		d := reference.AddDays(i)
		if weekdays[d.Weekday()] {
			days = append(days, d)
		}
	}
	return days
}

// ComputeSlotsForDay walks every window independently and emits one slot per
// step whose [start, start+duration] fits inside the window and starts no
// earlier than now+minimumNotice.
//
// Windows are expected to be pre-filtered to date's weekday (see WindowsForDay).
// Overlapping windows yield duplicate slots; the engine does not dedupe.
func (e *Engine) ComputeSlotsForDay(date Date, windows []Window, bookings []Booking, params Params, now Moment) ([]Slot, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	threshold := now.AddMinutes(params.MinimumNoticeMinutes)
	slots := make([]Slot, 0)

	for _, w := range windows {
		if !w.valid() {
			continue
		}

		windowEnd := date.At(w.EndMinute)
		for cursor := date.At(w.StartMinute); !cursor.AddMinutes(params.DurationMinutes).After(windowEnd); cursor = cursor.AddMinutes(e.step) {
			if cursor.Before(threshold) {
				continue
			}

			start := cursor.AddMinutes(-params.BeforeBufferMinutes)
			end := cursor.AddMinutes(params.DurationMinutes + params.AfterBufferMinutes)

			slots = append(slots, Slot{
				Start:     cursor,
				Available: !conflictsAny(start, end, bookings),
			})
		}
	}

	return slots, nil
}

func conflictsAny(start, end Moment, bookings []Booking) bool {
	for _, b := range bookings {
		if b.Confirmed && Conflicts(start, end, b) {
			return true
		}
	}
	return false
}

// Conflicts reports whether the buffered interval [start, end] collides with b.
//
// Touching endpoints do not conflict, except that an interval whose start has
// the same clock time as the booking start always conflicts, regardless of
// the calendar date of either.
func Conflicts(start, end Moment, b Booking) bool {
	switch {
	case b.Start.Before(start) && start.Before(b.End):
		return true
	case b.Start.Before(end) && end.Before(b.End):
		return true
	case start.Before(b.Start) && end.After(b.End):
		return true
	}
	return start.Minute == b.Start.Minute
}

// AvailableOnly keeps the slots that are free, preserving order.
func AvailableOnly(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// WindowsForDay returns the active windows that apply to weekday.
func WindowsForDay(windows []Window, weekday time.Weekday) []Window {
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.IsActive && w.DayOfWeek == weekday {
			out = append(out, w)
		}
	}
	return out
}
