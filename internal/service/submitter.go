package service

import (
	"context"
	"strings"
	"time"

	"github.com/shenikar/traffic_overlay/internal/classifier"
	"github.com/shenikar/traffic_overlay/internal/eventloop"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/sirupsen/logrus"
)

// ReportSubmitter отправляет новые сообщения о происшествиях.
// Методы вызываются в цикле событий.
type ReportSubmitter struct {
	loop    *eventloop.Loop
	repo    ReportRepository
	feed    *ReportFeed
	notices notice.Publisher
	logger  *logrus.Logger
	now     func() time.Time
}

func NewReportSubmitter(loop *eventloop.Loop, repo ReportRepository, feed *ReportFeed, notices notice.Publisher, logger *logrus.Logger) *ReportSubmitter {
	return &ReportSubmitter{
		loop:    loop,
		repo:    repo,
		feed:    feed,
		notices: notices,
		logger:  logger,
		now:     time.Now,
	}
}

// Submit классифицирует и отправляет сообщение.
// Пустое описание ничего не отправляет и возвращает false.
func (s *ReportSubmitter) Submit(p models.GeoPoint, description string) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service": "submitter",
		"method":  "Submit",
	})

	if strings.TrimSpace(description) == "" {
		log.Debug("Empty description, report not submitted")
		return false
	}

	report := models.IncidentReport{
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Description: description,
		Type:        classifier.Classify(string(models.TypeOther), description),
		Timestamp:   s.now().UTC().Format(models.TimestampLayout),
	}

	s.loop.Async(func(ctx context.Context) func() {
		msg, err := s.repo.SubmitReport(ctx, report)
		return func() {
			if err != nil {
				log.WithError(err).Error("Error submitting report")
				return
			}
			log.WithField("type", report.Type).Info("Report submitted")
			publishNotice(s.loop.Async, s.notices, log, notice.KindReportConfirmation, msg)
			if s.feed != nil {
				s.feed.Refresh()
			}
		}
	})
	return true
}
