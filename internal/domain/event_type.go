package domain

import "time"

// EventType is a bookable meeting kind offered by a host
type EventType struct {
	ID                   int64
	HostID               int64
	Title                string
	Slug                 string // unique per host
	Description          *string
	DurationMinutes      int
	Color                string
	IsActive             bool
	RequiresConfirmation bool
	BeforeBufferMinutes  int
	AfterBufferMinutes   int
	MinimumNoticeMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InitialStatus returns the status a new booking of this type starts with
func (e *EventType) InitialStatus() BookingStatus {
	if e.RequiresConfirmation {
		return StatusPending
	}
	return StatusConfirmed
}

// DefaultEventType returns the event type created for every new host
func DefaultEventType(hostID int64) *EventType {
	description := DefaultEventDescription
	return &EventType{
		HostID:               hostID,
		Title:                DefaultEventTitle,
		Slug:                 DefaultEventSlug,
		Description:          &description,
		DurationMinutes:      DefaultEventDurationMinutes,
		Color:                DefaultEventColor,
		IsActive:             true,
		MinimumNoticeMinutes: DefaultMinimumNoticeMinutes,
	}
}
