package service

import (
	"context"
	"errors"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/sirupsen/logrus"
)

// Группы слоев на карте
const (
	GroupLocation = "location"
	GroupReports  = "reports"
	GroupRoute    = "route"
)

const noticePublishTimeout = 3 * time.Second

var (
	// ErrLocationUnavailable - не удалось получить свежие координаты устройства
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrEmptyDescription - пустое описание, сообщение не отправляется
	ErrEmptyDescription = errors.New("empty description")
)

// ReportRepository определяет контракт внешнего сервиса сообщений
type ReportRepository interface {
	ListReports(ctx context.Context) ([]models.IncidentReport, error)
	SubmitReport(ctx context.Context, report models.IncidentReport) (string, error)
}

// RouteProvider определяет контракт сервиса маршрутизации
type RouteProvider interface {
	Route(ctx context.Context, req models.RouteRequest) (*geojson.FeatureCollection, error)
}

// publishNotice публикует уведомление вне цикла событий
func publishNotice(run func(work func(ctx context.Context) func()), pub notice.Publisher, log *logrus.Entry, kind notice.Kind, message string) {
	n := notice.New(kind, message)
	run(func(ctx context.Context) func() {
		ctx, cancel := context.WithTimeout(ctx, noticePublishTimeout)
		defer cancel()
		if err := pub.Publish(ctx, n); err != nil {
			log.WithError(err).WithField("notice_kind", kind).Error("Failed to publish notice")
		}
		return nil
	})
}
