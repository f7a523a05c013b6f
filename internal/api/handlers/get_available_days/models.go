package get_available_days

import (
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	AvailableDays []string          `json:"availableDays"`
	EventType     EventTypeResponse `json:"eventType"`
	Host          HostResponse      `json:"host"`
}

// EventTypeResponse публичная карточка типа события
type EventTypeResponse struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title"`
	Slug                 string  `json:"slug"`
	Description          *string `json:"description,omitempty"`
	DurationMinutes      int     `json:"durationMinutes"`
	Color                string  `json:"color"`
	RequiresConfirmation bool    `json:"requiresConfirmation"`
}

// HostResponse публичная карточка хоста
type HostResponse struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Image    *string `json:"image,omitempty"`
	Timezone string  `json:"timezone"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := resp.AvailableDays
	if days == nil {
		days = []string{}
	}

	return &AvailableDaysResponse{
		AvailableDays: days,
		EventType: EventTypeResponse{
			ID:                   resp.EventType.ID,
			Title:                resp.EventType.Title,
			Slug:                 resp.EventType.Slug,
			Description:          resp.EventType.Description,
			DurationMinutes:      resp.EventType.DurationMinutes,
			Color:                resp.EventType.Color,
			RequiresConfirmation: resp.EventType.RequiresConfirmation,
		},
		Host: HostResponse{
			Name:     resp.Host.Name,
			Username: resp.Host.Username,
			Image:    resp.Host.Image,
			Timezone: resp.Host.Timezone,
		},
	}
}
