package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом уведомлений
// Транспорт доставки (email/push) - забота самого сервиса уведомлений,
// отсюда уходит только событие бронирования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingEvent отправляет событие бронирования
func (c *Client) SendBookingEvent(ctx context.Context, event *BookingEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/bookings", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendBookingEventWithGracefulDegradation отправляет событие с graceful degradation
// Недоступность сервиса уведомлений никогда не должна ломать бронирование:
// любая ошибка конвертируется в ErrServiceDegraded и логируется как ERROR
func (c *Client) SendBookingEventWithGracefulDegradation(ctx context.Context, event *BookingEvent) error {
	if err := c.SendBookingEvent(ctx, event); err != nil {
		c.log.Error("Notifier unavailable, applying graceful degradation for booking_id=%d: %v", event.BookingID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, event.BookingID, err)
	}

	c.log.Info("Notification sent: event=%s, booking_id=%d", event.Event, event.BookingID)
	return nil
}
