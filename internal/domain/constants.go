package domain

// Default values
const (
	DefaultMinimumNoticeMinutes = 60
	DefaultBufferMinutes        = 0
	DefaultEventDurationMinutes = 30
	DefaultEventColor           = "#3b82f6"
	DefaultEventTitle           = "Réunion de 30 minutes"
	DefaultEventSlug            = "reunion-30-min"
	DefaultEventDescription     = "Une réunion rapide de 30 minutes"
	DefaultGuestTimezone        = "Europe/Paris"
	DefaultHostDisplayName      = "Hôte"
	DefaultDayStartMinute       = 9 * 60
	DefaultDayEndMinute         = 17 * 60
)

// Business validation constants
const (
	MinutesPerDay           = 24 * 60
	MinEventDurationMinutes = 5
	MaxEventDurationMinutes = 480 // 8 hours
	MaxBufferMinutes        = 240
	MaxMinimumNoticeMinutes = 10080 // 1 week
	MinPasswordLength       = 6
	MaxGuestNotesLength     = 1000
	MaxCancelReasonLength   = 500
	MaxTitleLength          = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
