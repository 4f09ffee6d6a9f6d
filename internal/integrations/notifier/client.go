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
	Error(format string, v ...interface{})
}

// Client клиент сервиса доставки уведомлений (email/SMS)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет событие бронирования в сервис уведомлений
func (c *Client) Send(ctx context.Context, n *BookingNotification) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
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

// SendWithGracefulDegradation отправляет уведомление с graceful degradation:
// при недоступности сервиса событие теряется, бронирование — нет.
// Ошибка логируется уровнем ERROR, чтобы проблему было видно сразу
func (c *Client) SendWithGracefulDegradation(ctx context.Context, n *BookingNotification) error {
	if err := c.Send(ctx, n); err != nil {
		c.log.Error("Notifier unavailable, applying graceful degradation for booking_id=%d, event=%s: %v",
			n.BookingID, n.Event, err)
		return fmt.Errorf("%w: booking_id=%d, event=%s, error=%v", ErrServiceDegraded, n.BookingID, n.Event, err)
	}

	c.log.Info("Notification sent: booking_id=%d, event=%s", n.BookingID, n.Event)
	return nil
}
