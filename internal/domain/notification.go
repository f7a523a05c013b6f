package domain

import "time"

// BookingNotification carries everything an email about a booking needs,
// so that delivery does not touch the database
type BookingNotification struct {
	BookingID     int64     `json:"bookingId"`
	Status        string    `json:"status"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestTimezone string    `json:"guestTimezone"`
	HostName      string    `json:"hostName"`
	HostEmail     string    `json:"hostEmail"`
	EventTitle    string    `json:"eventTitle"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	CancelToken   string    `json:"cancelToken"`
	CancelReason  *string   `json:"cancelReason,omitempty"`
}

// NewBookingNotification assembles a notification from its parts
func NewBookingNotification(b *Booking, host *Host, eventType *EventType) *BookingNotification {
	tz := b.GuestTimezone
	if tz == "" {
		tz = DefaultGuestTimezone
	}
	return &BookingNotification{
		BookingID:     b.ID,
		Status:        string(b.Status),
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestTimezone: tz,
		HostName:      host.DisplayName(),
		HostEmail:     host.Email,
		EventTitle:    eventType.Title,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		CancelToken:   b.CancelToken,
		CancelReason:  b.CancelReason,
	}
}
