package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a guest reservation of a host's event type
type Booking struct {
	ID            int64
	HostID        int64
	EventTypeID   int64
	GuestName     string
	GuestEmail    string
	GuestNotes    *string
	GuestTimezone string // label only, no conversion is applied
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	CancelReason  *string
	CancelToken   string
	ReminderSent  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking blocks the host's calendar
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled at now
func (b *Booking) CanBeCancelled(now time.Time) bool {
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return false
	}
	return now.Before(b.StartTime)
}

// CanTransitionTo reports whether the host may move the booking to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	default:
		return false
	}
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// HostBookingsFilter filter for the host's booking list
type HostBookingsFilter struct {
	HostID int64
	Status *BookingStatus
	From   *time.Time // only bookings starting at or after From
}
