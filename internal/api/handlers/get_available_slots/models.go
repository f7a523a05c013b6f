package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time string `json:"time"` // "HH:mm"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{Time: slot.Time}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(username, eventSlug, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Username:  username,
		EventSlug: eventSlug,
		Date:      date,
	}
}
