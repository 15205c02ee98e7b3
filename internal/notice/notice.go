package notice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind - тип уведомления для пользователя
type Kind string

const (
	KindGPSError           Kind = "gps_error"
	KindLocationError      Kind = "location_error"
	KindReportConfirmation Kind = "report_confirmation"
	KindNavigation         Kind = "navigation"
)

// Notice - сообщение, которое нужно показать пользователю
type Notice struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func New(kind Kind, message string) Notice {
	return Notice{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, n Notice) error
}

// Board хранит последние уведомления
type Board interface {
	Publisher
	Recent(ctx context.Context, limit int) ([]Notice, error)
}

type multiPublisher []Publisher

// Multi публикует уведомление во все переданные издатели
func Multi(pubs ...Publisher) Publisher {
	return multiPublisher(pubs)
}

func (m multiPublisher) Publish(ctx context.Context, n Notice) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
