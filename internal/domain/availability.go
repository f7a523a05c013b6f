package domain

import "time"

// Availability is a recurring weekly window during which a host accepts bookings.
// StartMinute and EndMinute are minutes since local midnight, 0 <= start < end <= 1440.
type Availability struct {
	ID          int64
	HostID      int64
	DayOfWeek   int // 0 = Sunday
	StartMinute int
	EndMinute   int
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid checks the window bounds
func (a *Availability) IsValid() bool {
	return a.DayOfWeek >= 0 && a.DayOfWeek <= 6 &&
		a.StartMinute >= 0 && a.EndMinute <= MinutesPerDay &&
		a.StartMinute < a.EndMinute
}

// DefaultWeeklyAvailability returns the Monday to Friday 09:00-17:00 schedule
// given to every new host
func DefaultWeeklyAvailability(hostID int64) []*Availability {
	windows := make([]*Availability, 0, 5)
	for day := int(time.Monday); day <= int(time.Friday); day++ {
		windows = append(windows, &Availability{
			HostID:      hostID,
			DayOfWeek:   day,
			StartMinute: DefaultDayStartMinute,
			EndMinute:   DefaultDayEndMinute,
			IsActive:    true,
		})
	}
	return windows
}
