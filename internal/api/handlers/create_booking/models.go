package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string  `json:"date"` // "2025-11-03"
	Time          string  `json:"time"` // "10:00"
	GuestName     string  `json:"guestName"`
	GuestEmail    string  `json:"guestEmail"`
	GuestNotes    *string `json:"guestNotes,omitempty"`
	GuestTimezone *string `json:"guestTimezone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestTimezone   string `json:"guestTimezone"`
	CancelToken     string `json:"cancelToken"`
	EventTitle      string `json:"eventTitle"`
	HostName        string `json:"hostName"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(username, eventSlug string) *createBooking.Request {
	return &createBooking.Request{
		Username:      username,
		EventSlug:     eventSlug,
		Date:          r.Date,
		Time:          r.Time,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		GuestNotes:    r.GuestNotes,
		GuestTimezone: r.GuestTimezone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Status:          resp.Status,
		Date:            resp.Date,
		Time:            resp.Time,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		GuestName:       resp.GuestName,
		GuestEmail:      resp.GuestEmail,
		GuestTimezone:   resp.GuestTimezone,
		CancelToken:     resp.CancelToken,
		EventTitle:      resp.EventTitle,
		HostName:        resp.HostName,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
