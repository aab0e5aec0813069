package create_rental

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor == nil || req.Actor.ActorID() <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.PickupStationID <= 0 {
		return fmt.Errorf("%w: pickupStationID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	return nil
}

// validateInterval проверяет, что интервал аренды корректен и не в прошлом
func validateInterval(interval domain.Interval, now time.Time) error {
	if !interval.IsValid() {
		return fmt.Errorf("%w: start date must be before end date", ErrInvalidInterval)
	}

	if interval.Start.Before(now) {
		return fmt.Errorf("%w: start date must not be in the past", ErrInvalidInterval)
	}

	return nil
}
