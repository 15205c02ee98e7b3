package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// StatusError - внешний сервис ответил кодом вне диапазона 2xx
type StatusError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s responded with status %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}

// NewHTTPClient создает клиент с трассировкой. Нулевой timeout - ограничения нет.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

// checkStatus превращает ответ с ошибочным кодом в *StatusError
func checkStatus(service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	statusErr := &StatusError{Service: service, StatusCode: resp.StatusCode}

	// Сервисы возвращают {"error": "..."} или {"error": {"message": "..."}}
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		var text string
		var nested struct {
			Message string `json:"message"`
		}
		switch {
		case json.Unmarshal(payload.Error, &text) == nil && text != "":
			statusErr.Message = text
		case json.Unmarshal(payload.Error, &nested) == nil && nested.Message != "":
			statusErr.Message = nested.Message
		default:
			statusErr.Message = payload.Message
		}
	}
	return statusErr
}
