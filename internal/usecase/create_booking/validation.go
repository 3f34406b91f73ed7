package create_booking

import (
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}
	if len(req.TimeSlot) > domain.MaxTimeSlotLength {
		return fmt.Errorf("%w: timeSlot is too long", ErrInvalidInput)
	}

	if req.Passengers < domain.MinPassengers {
		return fmt.Errorf("%w: passengers must be positive", ErrInvalidInput)
	}

	if req.PriceOverride != nil && *req.PriceOverride < 0 {
		return fmt.Errorf("%w: price override must not be negative", ErrInvalidInput)
	}

	if req.Deposit < 0 {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}

	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}
