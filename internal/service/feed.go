package service

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/shenikar/traffic_overlay/internal/classifier"
	"github.com/shenikar/traffic_overlay/internal/eventloop"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/sirupsen/logrus"
)

// localTimeLayout повторяет toLocaleString в en-US
const localTimeLayout = "1/2/2006, 3:04:05 PM"

// ClassifiedReport - сообщение с вычисленной категорией
type ClassifiedReport struct {
	models.IncidentReport
	Tag models.TypeTag
}

// FilterReports классифицирует сообщения и оставляет подходящие под фильтр
func FilterReports(reports []models.IncidentReport, filter models.Filter) []ClassifiedReport {
	out := make([]ClassifiedReport, 0, len(reports))
	for _, r := range reports {
		tag := classifier.Classify(string(r.Type), r.Description)
		if filter.Matches(tag) {
			out = append(out, ClassifiedReport{IncidentReport: r, Tag: tag})
		}
	}
	return out
}

// ReportFeed периодически загружает сообщения и показывает их маркерами.
// Методы вызываются в цикле событий.
type ReportFeed struct {
	loop     *eventloop.Loop
	view     *mapview.View
	repo     ReportRepository
	logger   *logrus.Logger
	location *time.Location

	filter  models.Filter
	markers []mapview.Handle
}

func NewReportFeed(loop *eventloop.Loop, view *mapview.View, repo ReportRepository, logger *logrus.Logger, location *time.Location) *ReportFeed {
	if location == nil {
		location = time.Local
	}
	return &ReportFeed{
		loop:     loop,
		view:     view,
		repo:     repo,
		logger:   logger,
		location: location,
		filter:   models.Filter{All: true},
	}
}

// Start загружает сообщения сразу и затем с интервалом interval
func (f *ReportFeed) Start(ctx context.Context, interval time.Duration) {
	f.Refresh()
	f.loop.Every(ctx, interval, f.Refresh)
}

func (f *ReportFeed) Filter() models.Filter { return f.filter }

// SetFilter меняет фильтр и сразу обновляет ленту
func (f *ReportFeed) SetFilter(filter models.Filter) {
	f.filter = filter
	f.Refresh()
}

// Refresh запрашивает сообщения с фильтром, выбранным на момент вызова.
// Ответ, пришедший последним, полностью заменяет маркеры.
func (f *ReportFeed) Refresh() {
	filter := f.filter
	f.loop.Async(func(ctx context.Context) func() {
		reports, err := f.repo.ListReports(ctx)
		return func() {
			log := f.logger.WithFields(logrus.Fields{
				"service": "feed",
				"method":  "Refresh",
				"filter":  filter.String(),
			})
			if err != nil {
				log.WithError(err).Error("Error fetching reports")
				return
			}
			f.render(FilterReports(reports, filter))
			log.WithField("count", len(f.markers)).Debug("Report markers refreshed")
		}
	})
}

func (f *ReportFeed) render(reports []ClassifiedReport) {
	for _, h := range f.markers {
		f.view.Remove(h)
	}
	f.markers = f.markers[:0]

	for _, r := range reports {
		f.markers = append(f.markers, f.view.AddMarker(GroupReports, r.Point(), f.popup(r)))
	}
}

func (f *ReportFeed) popup(r ClassifiedReport) string {
	stamp := r.Timestamp
	if t, err := r.ReportTime(); err == nil {
		stamp = t.In(f.location).Format(localTimeLayout)
	}
	return fmt.Sprintf("<b>Type: %s</b><br>%s<br><i>%s</i>",
		html.EscapeString(string(r.Tag)), html.EscapeString(r.Description), html.EscapeString(stamp))
}
