package calculate_price

import (
	calculatePrice "github.com/velmare/Nautic-BookingService/internal/usecase/calculate_price"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	Price  float64 `json:"price"`
	Season string  `json:"season"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceResponse {
	return &PriceResponse{
		Price:  resp.Price,
		Season: string(resp.Season),
	}
}
