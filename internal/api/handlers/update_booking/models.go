package update_booking

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	updateBooking "github.com/velmare/Nautic-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Все поля опциональны: присланные перезаписывают текущие значения
type UpdateBookingRequest struct {
	CustomerName  *string  `json:"customerName,omitempty"`
	CustomerPhone *string  `json:"customerPhone,omitempty"`
	CustomerEmail *string  `json:"customerEmail,omitempty"`
	BookingDate   *string  `json:"bookingDate,omitempty"` // "2025-07-10"
	TimeSlot      *string  `json:"timeSlot,omitempty"`
	Passengers    *int     `json:"passengers,omitempty"`
	FinalPrice    *float64 `json:"finalPrice,omitempty"`
	Deposit       *float64 `json:"deposit,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BoatID        int64   `json:"boatId"`
	ServiceID     int64   `json:"serviceId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	BookingDate   string  `json:"bookingDate"`
	TimeSlot      string  `json:"timeSlot"`
	Passengers    int     `json:"passengers"`
	BasePrice     float64 `json:"basePrice"`
	FinalPrice    float64 `json:"finalPrice"`
	Deposit       float64 `json:"deposit"`
	Balance       float64 `json:"balance"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ID:            bookingID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Passengers:    r.Passengers,
		FinalPrice:    r.FinalPrice,
		Deposit:       r.Deposit,
		Notes:         r.Notes,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.TimeSlot != nil {
		slot := domain.TimeSlot(*r.TimeSlot)
		req.TimeSlot = &slot
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BoatID:        resp.BoatID,
		ServiceID:     resp.ServiceID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:      string(resp.TimeSlot),
		Passengers:    resp.Passengers,
		BasePrice:     resp.BasePrice,
		FinalPrice:    resp.FinalPrice,
		Deposit:       resp.Deposit,
		Balance:       resp.Balance,
		Status:        string(resp.Status),
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
