package models

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// Schedule окно доступности в формате API
type Schedule struct {
	DayOfWeek int              `json:"dayOfWeek"` // 0 = воскресенье
	StartTime types.TimeString `json:"startTime"` // "09:00"
	EndTime   types.TimeString `json:"endTime"`   // "17:00", допускается "24:00"
}

// CreateAvailabilityRequest запрос на добавление окна
type CreateAvailabilityRequest struct {
	HostID int64 `json:"-"`
	Schedule
}

// ReplaceAvailabilityRequest запрос на полную замену расписания
type ReplaceAvailabilityRequest struct {
	HostID    int64      `json:"-"`
	Schedules []Schedule `json:"schedules"`
}

// Response модели

// AvailabilityResponse окно доступности
type AvailabilityResponse struct {
	ID        int64            `json:"id"`
	DayOfWeek int              `json:"dayOfWeek"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	IsActive  bool             `json:"isActive"`
}

// AvailabilityListResponse ответ с расписанием хоста
type AvailabilityListResponse struct {
	Availability []AvailabilityResponse `json:"availability"`
}

// Методы конвертации

// ToDomainAvailability конвертирует окно API в domain модель
func (s Schedule) ToDomainAvailability(hostID int64) (*domain.Availability, error) {
	start, err := s.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &domain.Availability{
		HostID:      hostID,
		DayOfWeek:   s.DayOfWeek,
		StartMinute: start,
		EndMinute:   end,
		IsActive:    true,
	}, nil
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	if a == nil {
		return nil
	}

	// Границы проверены при записи
	start, _ := types.NewTimeStringFromMinutes(a.StartMinute)
	end, _ := types.NewTimeStringFromMinutes(a.EndMinute)

	return &AvailabilityResponse{
		ID:        a.ID,
		DayOfWeek: a.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		IsActive:  a.IsActive,
	}
}

// FromDomainAvailabilityList конвертирует список domain моделей в DTO
func FromDomainAvailabilityList(list []*domain.Availability) *AvailabilityListResponse {
	resp := &AvailabilityListResponse{
		Availability: make([]AvailabilityResponse, 0, len(list)),
	}

	for _, a := range list {
		if item := FromDomainAvailability(a); item != nil {
			resp.Availability = append(resp.Availability, *item)
		}
	}

	return resp
}
