package create_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var validate = validator.New()

// validateRequest нормализует и валидирует входные данные запроса
// Возвращает разобранную дату и минуту начала
func validateRequest(req *Request) (slotengine.Date, int, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.EventSlug = strings.TrimSpace(req.EventSlug)
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)

	if err := validate.Struct(req); err != nil {
		return slotengine.Date{}, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := slotengine.ParseDate(req.Date)
	if err != nil {
		return slotengine.Date{}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return slotengine.Date{}, 0, fmt.Errorf("%w: invalid time format: %v", ErrInvalidTimeSlot, err)
	}

	minute, err := startTime.Minutes()
	if err != nil {
		return slotengine.Date{}, 0, fmt.Errorf("%w: invalid time: %v", ErrInvalidTimeSlot, err)
	}

	return date, minute, nil
}
