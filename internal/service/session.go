package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/traffic_overlay/internal/eventloop"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/sirupsen/logrus"
)

// ClickTarget - кто обработал клик по карте
type ClickTarget string

const (
	ClickNavigation ClickTarget = "navigation"
	ClickReport     ClickTarget = "report"
	ClickIgnored    ClickTarget = "ignored"
)

// MapBroadcaster рассылает снимок карты после изменений. Не должен блокировать.
type MapBroadcaster interface {
	BroadcastSnapshot(snap mapview.Snapshot)
}

// OverlaySession определяет контракт для HTTP слоя
type OverlaySession interface {
	Snapshot(ctx context.Context) (mapview.Snapshot, error)
	Click(ctx context.Context, p models.GeoPoint, description string) (ClickTarget, error)
	DoubleClick(ctx context.Context) (bool, error)
	SetFilter(ctx context.Context, f models.Filter) error
	Filter(ctx context.Context) (models.Filter, error)
	ReportHere(ctx context.Context, description string) error
	StartNavigation(ctx context.Context) (NavigationStatus, error)
	ClearNavigation(ctx context.Context) (bool, error)
	Navigation(ctx context.Context) (NavigationStatus, error)
	UpdateLocation(ctx context.Context, fix models.PositionFix) (bool, error)
	LocationError(ctx context.Context, perr *PositionError) error
	Notices(ctx context.Context, limit int) ([]notice.Notice, error)
}

// SessionOptions - параметры сессии карты
type SessionOptions struct {
	View         mapview.Options
	Tracker      TrackerOptions
	PollInterval time.Duration
	FixTimeout   time.Duration
	Trigger      string
	Location     *time.Location
}

// Session объединяет карту и все компоненты в одном цикле событий
type Session struct {
	loop        *eventloop.Loop
	view        *mapview.View
	board       notice.Board
	notices     notice.Publisher
	broadcaster MapBroadcaster
	logger      *logrus.Logger
	opts        SessionOptions

	tracker   *LocationTracker
	feed      *ReportFeed
	submitter *ReportSubmitter
	planner   *NavigationPlanner
}

// NewSession создает сессию. notices получает все уведомления, board отдает последние из них.
func NewSession(reports ReportRepository, routes RouteProvider, board notice.Board, notices notice.Publisher,
	broadcaster MapBroadcaster, logger *logrus.Logger, opts SessionOptions,
) *Session {
	if notices == nil {
		notices = board
	}
	s := &Session{
		view:        mapview.New(opts.View),
		board:       board,
		notices:     notices,
		broadcaster: broadcaster,
		logger:      logger,
		opts:        opts,
	}
	s.loop = eventloop.New(logger, s.afterEvent)
	s.tracker = NewLocationTracker(s.loop, s.view, notices, logger, opts.Tracker)
	s.feed = NewReportFeed(s.loop, s.view, reports, logger, opts.Location)
	s.submitter = NewReportSubmitter(s.loop, reports, s.feed, notices, logger)
	s.planner = NewNavigationPlanner(s.loop, s.view, routes, notices, logger, opts.Trigger)
	return s
}

func (s *Session) afterEvent() {
	if s.broadcaster == nil || !s.view.TakeDirty() {
		return
	}
	s.broadcaster.BroadcastSnapshot(s.view.Snapshot())
}

// Start ставит в очередь запуск ленты сообщений и слежения за местоположением.
// Вызывается до Run, чтобы запуск был первым событием цикла.
func (s *Session) Start(ctx context.Context) error {
	return s.loop.Post(func() {
		if s.opts.PollInterval > 0 {
			s.feed.Start(ctx, s.opts.PollInterval)
		} else {
			s.feed.Refresh()
		}
		s.tracker.Watch()
	})
}

// Run обрабатывает события сессии до отмены контекста
func (s *Session) Run(ctx context.Context) {
	s.loop.Run(ctx)
}

// call выполняет fn в цикле и возвращает ее результат
func call[T any](ctx context.Context, l *eventloop.Loop, fn func() T) (T, error) {
	var out T
	if err := l.Call(ctx, func() { out = fn() }); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (s *Session) Snapshot(ctx context.Context) (mapview.Snapshot, error) {
	return call(ctx, s.loop, s.view.Snapshot)
}

// Click отдает клик планировщику, если он собирает точки, иначе отправляет сообщение
func (s *Session) Click(ctx context.Context, p models.GeoPoint, description string) (ClickTarget, error) {
	return call(ctx, s.loop, func() ClickTarget {
		if s.planner.Collecting() && s.planner.Click(p) {
			return ClickNavigation
		}
		if s.submitter.Submit(p, description) {
			return ClickReport
		}
		return ClickIgnored
	})
}

func (s *Session) DoubleClick(ctx context.Context) (bool, error) {
	return s.ClearNavigation(ctx)
}

func (s *Session) SetFilter(ctx context.Context, f models.Filter) error {
	return s.loop.Call(ctx, func() { s.feed.SetFilter(f) })
}

func (s *Session) Filter(ctx context.Context) (models.Filter, error) {
	return call(ctx, s.loop, s.feed.Filter)
}

// ReportHere ждет свежие координаты и отправляет сообщение в этой точке
func (s *Session) ReportHere(ctx context.Context, description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}

	fixCtx := ctx
	if s.opts.FixTimeout > 0 {
		var cancel context.CancelFunc
		fixCtx, cancel = context.WithTimeout(ctx, s.opts.FixTimeout)
		defer cancel()
	}

	p, err := s.tracker.NextFix(fixCtx)
	if err != nil {
		log := s.logger.WithFields(logrus.Fields{
			"service": "session",
			"method":  "ReportHere",
		})
		log.WithError(err).Warn("Unable to retrieve location")
		publishNotice(s.loop.Async, s.notices, log, notice.KindLocationError,
			"Unable to retrieve your location: "+err.Error())
		return fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	return s.loop.Call(ctx, func() { s.submitter.Submit(p, description) })
}

func (s *Session) StartNavigation(ctx context.Context) (NavigationStatus, error) {
	return call(ctx, s.loop, func() NavigationStatus {
		s.planner.Activate()
		return s.planner.Status()
	})
}

func (s *Session) ClearNavigation(ctx context.Context) (bool, error) {
	return call(ctx, s.loop, s.planner.Clear)
}

func (s *Session) Navigation(ctx context.Context) (NavigationStatus, error) {
	return call(ctx, s.loop, s.planner.Status)
}

func (s *Session) UpdateLocation(ctx context.Context, fix models.PositionFix) (bool, error) {
	return call(ctx, s.loop, func() bool { return s.tracker.Update(fix) })
}

func (s *Session) LocationError(ctx context.Context, perr *PositionError) error {
	return s.loop.Call(ctx, func() { s.tracker.Fail(perr) })
}

func (s *Session) Notices(ctx context.Context, limit int) ([]notice.Notice, error) {
	if s.board == nil {
		return nil, nil
	}
	return s.board.Recent(ctx, limit)
}
