package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreateEventTypeRequest запрос на создание типа события
// Необязательные поля получают значения по умолчанию
type CreateEventTypeRequest struct {
	HostID               int64   `json:"-"`
	Title                string  `json:"title"`
	Description          *string `json:"description,omitempty"`
	DurationMinutes      int     `json:"durationMinutes"`
	Color                *string `json:"color,omitempty"`                // По умолчанию #3b82f6
	RequiresConfirmation *bool   `json:"requiresConfirmation,omitempty"` // По умолчанию false
	BeforeBufferMinutes  *int    `json:"beforeBufferMinutes,omitempty"`  // По умолчанию 0
	AfterBufferMinutes   *int    `json:"afterBufferMinutes,omitempty"`   // По умолчанию 0
	MinimumNoticeMinutes *int    `json:"minimumNoticeMinutes,omitempty"` // По умолчанию 60
}

// UpdateEventTypeRequest запрос на частичное обновление типа события
// Все поля опциональны - обновляются только переданные значения, slug не меняется
type UpdateEventTypeRequest struct {
	HostID               int64   `json:"-"`
	Title                *string `json:"title,omitempty"`
	Description          *string `json:"description,omitempty"`
	DurationMinutes      *int    `json:"durationMinutes,omitempty"`
	Color                *string `json:"color,omitempty"`
	IsActive             *bool   `json:"isActive,omitempty"`
	RequiresConfirmation *bool   `json:"requiresConfirmation,omitempty"`
	BeforeBufferMinutes  *int    `json:"beforeBufferMinutes,omitempty"`
	AfterBufferMinutes   *int    `json:"afterBufferMinutes,omitempty"`
	MinimumNoticeMinutes *int    `json:"minimumNoticeMinutes,omitempty"`
}

// Response модели

// EventTypeResponse ответ с данными типа события
type EventTypeResponse struct {
	ID                   int64     `json:"id"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	Description          *string   `json:"description,omitempty"`
	DurationMinutes      int       `json:"durationMinutes"`
	Color                string    `json:"color"`
	IsActive             bool      `json:"isActive"`
	RequiresConfirmation bool      `json:"requiresConfirmation"`
	BeforeBufferMinutes  int       `json:"beforeBufferMinutes"`
	AfterBufferMinutes   int       `json:"afterBufferMinutes"`
	MinimumNoticeMinutes int       `json:"minimumNoticeMinutes"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// EventTypeListResponse ответ со списком типов событий
type EventTypeListResponse struct {
	EventTypes []EventTypeResponse `json:"eventTypes"`
}

// Методы конвертации

// ToDomainEventType собирает domain модель с значениями по умолчанию
func (r *CreateEventTypeRequest) ToDomainEventType(slug string) *domain.EventType {
	et := &domain.EventType{
		HostID:               r.HostID,
		Title:                strings.TrimSpace(r.Title),
		Slug:                 slug,
		Description:          normalizeDescription(r.Description),
		DurationMinutes:      r.DurationMinutes,
		Color:                domain.DefaultEventColor,
		IsActive:             true,
		BeforeBufferMinutes:  domain.DefaultBufferMinutes,
		AfterBufferMinutes:   domain.DefaultBufferMinutes,
		MinimumNoticeMinutes: domain.DefaultMinimumNoticeMinutes,
	}

	if r.Color != nil {
		et.Color = strings.ToLower(*r.Color)
	}
	if r.RequiresConfirmation != nil {
		et.RequiresConfirmation = *r.RequiresConfirmation
	}
	if r.BeforeBufferMinutes != nil {
		et.BeforeBufferMinutes = *r.BeforeBufferMinutes
	}
	if r.AfterBufferMinutes != nil {
		et.AfterBufferMinutes = *r.AfterBufferMinutes
	}
	if r.MinimumNoticeMinutes != nil {
		et.MinimumNoticeMinutes = *r.MinimumNoticeMinutes
	}

	return et
}

// ApplyToEventType применяет обновления к существующему типу события
// Обновляются только непустые (not nil) поля из request
func (r *UpdateEventTypeRequest) ApplyToEventType(et *domain.EventType) {
	if r.Title != nil {
		et.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		et.Description = normalizeDescription(r.Description)
	}
	if r.DurationMinutes != nil {
		et.DurationMinutes = *r.DurationMinutes
	}
	if r.Color != nil {
		et.Color = strings.ToLower(*r.Color)
	}
	if r.IsActive != nil {
		et.IsActive = *r.IsActive
	}
	if r.RequiresConfirmation != nil {
		et.RequiresConfirmation = *r.RequiresConfirmation
	}
	if r.BeforeBufferMinutes != nil {
		et.BeforeBufferMinutes = *r.BeforeBufferMinutes
	}
	if r.AfterBufferMinutes != nil {
		et.AfterBufferMinutes = *r.AfterBufferMinutes
	}
	if r.MinimumNoticeMinutes != nil {
		et.MinimumNoticeMinutes = *r.MinimumNoticeMinutes
	}
}

// FromDomainEventType конвертирует domain модель в DTO
func FromDomainEventType(et *domain.EventType) *EventTypeResponse {
	if et == nil {
		return nil
	}

	return &EventTypeResponse{
		ID:                   et.ID,
		Title:                et.Title,
		Slug:                 et.Slug,
		Description:          et.Description,
		DurationMinutes:      et.DurationMinutes,
		Color:                et.Color,
		IsActive:             et.IsActive,
		RequiresConfirmation: et.RequiresConfirmation,
		BeforeBufferMinutes:  et.BeforeBufferMinutes,
		AfterBufferMinutes:   et.AfterBufferMinutes,
		MinimumNoticeMinutes: et.MinimumNoticeMinutes,
		CreatedAt:            et.CreatedAt,
		UpdatedAt:            et.UpdatedAt,
	}
}

// FromDomainEventTypeList конвертирует список domain моделей в DTO
func FromDomainEventTypeList(eventTypes []*domain.EventType) *EventTypeListResponse {
	resp := &EventTypeListResponse{
		EventTypes: make([]EventTypeResponse, 0, len(eventTypes)),
	}

	for _, et := range eventTypes {
		if etResp := FromDomainEventType(et); etResp != nil {
			resp.EventTypes = append(resp.EventTypes, *etResp)
		}
	}

	return resp
}

// Пустое описание хранится как NULL
func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
