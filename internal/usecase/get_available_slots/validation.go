package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
)

// validateRequest валидирует входные данные запроса и разбирает дату
func validateRequest(req *Request) (slotengine.Date, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.EventSlug) == "" {
		return slotengine.Date{}, fmt.Errorf("%w: username and eventSlug are required", ErrInvalidInput)
	}

	if req.Date == "" {
		return slotengine.Date{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	date, err := slotengine.ParseDate(req.Date)
	if err != nil {
		return slotengine.Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return date, nil
}
