package domain

import "time"

// Host is a user who publishes event types and receives bookings
type Host struct {
	ID           int64
	Name         string
	Email        string
	Username     string // public handle used in booking links
	PasswordHash string
	Image        *string
	Timezone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the name shown to guests
func (h *Host) DisplayName() string {
	if h.Name == "" {
		return DefaultHostDisplayName
	}
	return h.Name
}
