package update_booking

import (
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.CustomerName != nil {
		if *req.CustomerName == "" {
			return fmt.Errorf("%w: customerName must not be empty", ErrInvalidInput)
		}
		if len(*req.CustomerName) > domain.MaxCustomerNameLength {
			return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
		}
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	if req.TimeSlot != nil {
		if *req.TimeSlot == "" {
			return fmt.Errorf("%w: timeSlot must not be empty", ErrInvalidInput)
		}
		if len(*req.TimeSlot) > domain.MaxTimeSlotLength {
			return fmt.Errorf("%w: timeSlot is too long", ErrInvalidInput)
		}
	}

	if req.Passengers != nil && *req.Passengers < domain.MinPassengers {
		return fmt.Errorf("%w: passengers must be positive", ErrInvalidInput)
	}

	if req.FinalPrice != nil && *req.FinalPrice < 0 {
		return fmt.Errorf("%w: finalPrice must not be negative", ErrInvalidInput)
	}

	if req.Deposit != nil && *req.Deposit < 0 {
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
