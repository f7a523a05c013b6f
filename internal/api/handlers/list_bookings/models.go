package list_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// ToServiceRequest создает запрос к сервису из query параметров
func ToServiceRequest(hostID int64, statusStr, upcomingStr string) (*models.ListHostBookingsRequest, error) {
	req := &models.ListHostBookingsRequest{HostID: hostID}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if upcomingStr != "" {
		upcoming, err := strconv.ParseBool(upcomingStr)
		if err != nil {
			return nil, fmt.Errorf("invalid upcoming value %q: %w", upcomingStr, err)
		}
		req.Upcoming = upcoming
	}

	return req, nil
}
