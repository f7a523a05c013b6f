package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// ListHostBookingsRequest запрос на получение бронирований хоста
type ListHostBookingsRequest struct {
	HostID   int64   `json:"hostId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Upcoming bool    `json:"upcoming"`         // Только будущие бронирования
}

// UpdateStatusRequest запрос хоста на смену статуса бронирования
type UpdateStatusRequest struct {
	HostID       int64   `json:"hostId"`
	Status       string  `json:"status"`
	CancelReason *string `json:"cancelReason,omitempty"`
}

// CancelByTokenRequest запрос гостя на отмену по токену
type CancelByTokenRequest struct {
	Token  string  `json:"token"`
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BookingResponse бронирование в кабинете хоста
type BookingResponse struct {
	ID            int64     `json:"id"`
	EventTypeID   int64     `json:"eventTypeId"`
	EventTitle    string    `json:"eventTitle,omitempty"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestNotes    *string   `json:"guestNotes,omitempty"`
	GuestTimezone string    `json:"guestTimezone"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	CancelReason  *string   `json:"cancelReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PublicBookingResponse бронирование, которое видит гость по ссылке отмены
type PublicBookingResponse struct {
	ID            int64     `json:"id"`
	Status        string    `json:"status"`
	EventTitle    string    `json:"eventTitle"`
	HostName      string    `json:"hostName"`
	GuestName     string    `json:"guestName"`
	GuestTimezone string    `json:"guestTimezone"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	CancelReason  *string   `json:"cancelReason,omitempty"`
	CanCancel     bool      `json:"canCancel"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, eventTitle string) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		EventTypeID:   b.EventTypeID,
		EventTitle:    eventTitle,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestNotes:    b.GuestNotes,
		GuestTimezone: b.GuestTimezone,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		CancelReason:  b.CancelReason,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// titles - названия типов событий по ID
func FromDomainBookingList(bookings []*domain.Booking, titles map[int64]string) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, titles[booking.EventTypeID]); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromNotification собирает публичное представление бронирования
func FromNotification(n *domain.BookingNotification, canCancel bool) *PublicBookingResponse {
	return &PublicBookingResponse{
		ID:            n.BookingID,
		Status:        n.Status,
		EventTitle:    n.EventTitle,
		HostName:      n.HostName,
		GuestName:     n.GuestName,
		GuestTimezone: n.GuestTimezone,
		StartTime:     n.StartTime,
		EndTime:       n.EndTime,
		CancelReason:  n.CancelReason,
		CanCancel:     canCancel,
	}
}
