package models

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Request модели

// CreateWindowRequest запрос на создание окна недоступности
type CreateWindowRequest struct {
	BoatID   int64   `json:"boatId"`
	DateFrom string  `json:"dateFrom"` // "2025-07-10"
	DateTo   string  `json:"dateTo"`   // "2025-07-14", включительно
	Reason   *string `json:"reason,omitempty"`
}

// Response модели

// WindowResponse ответ с данными окна недоступности
type WindowResponse struct {
	ID        int64     `json:"id"`
	BoatID    int64     `json:"boatId"`
	DateFrom  string    `json:"dateFrom"`
	DateTo    string    `json:"dateTo"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WindowListResponse ответ со списком окон недоступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.UnavailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:        w.ID,
		BoatID:    w.BoatID,
		DateFrom:  w.DateFrom.Format(domain.DateFormat),
		DateTo:    w.DateTo.Format(domain.DateFormat),
		Reason:    w.Reason,
		CreatedAt: w.CreatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.UnavailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, window := range windows {
		if windowResp := FromDomainWindow(window); windowResp != nil {
			resp.Windows = append(resp.Windows, *windowResp)
		}
	}

	return resp
}
