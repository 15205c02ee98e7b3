package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/traffic_overlay/internal/eventloop"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/sirupsen/logrus"
)

// PositionErrorCode - причина отказа геолокации
type PositionErrorCode string

const (
	PositionPermissionDenied PositionErrorCode = "permission_denied"
	PositionUnavailable      PositionErrorCode = "position_unavailable"
	PositionTimeout          PositionErrorCode = "timeout"
)

var positionErrorMessages = map[PositionErrorCode]string{
	PositionPermissionDenied: "User denied Geolocation",
	PositionUnavailable:      "Position unavailable",
	PositionTimeout:          "Timeout expired",
}

// PositionError - ошибка геолокации
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if msg, ok := positionErrorMessages[e.Code]; ok {
		return msg
	}
	return string(e.Code)
}

// ParsePositionErrorCode проверяет код ошибки геолокации
func ParsePositionErrorCode(s string) (PositionErrorCode, error) {
	code := PositionErrorCode(s)
	if _, ok := positionErrorMessages[code]; !ok {
		return "", fmt.Errorf("unknown position error code %q", s)
	}
	return code, nil
}

// TrackerOptions - параметры слежения за местоположением
type TrackerOptions struct {
	// WatchTimeout - сколько ждать очередного показания
	WatchTimeout time.Duration
	// ZoomThreshold - карта центрируется, только пока зум меньше порога
	ZoomThreshold int
	Zoom          int
}

var accuracyStyle = mapview.Style{Color: "blue", FillColor: "#3399ff", FillOpacity: 0.2}

// LocationTracker показывает текущее местоположение устройства.
// Все методы, кроме NextFix, вызываются в цикле событий.
type LocationTracker struct {
	loop    *eventloop.Loop
	view    *mapview.View
	notices notice.Publisher
	logger  *logrus.Logger
	opts    TrackerOptions

	marker mapview.Handle
	circle mapview.Handle
	// lastStamp - время последнего показания по часам клиента
	lastStamp time.Time

	waiters      map[chan models.GeoPoint]struct{}
	watching     bool
	watchGen     int
	stopWatchdog func() bool
}

func NewLocationTracker(loop *eventloop.Loop, view *mapview.View, notices notice.Publisher, logger *logrus.Logger, opts TrackerOptions) *LocationTracker {
	return &LocationTracker{
		loop:    loop,
		view:    view,
		notices: notices,
		logger:  logger,
		opts:    opts,
		waiters: make(map[chan models.GeoPoint]struct{}),
	}
}

// Watch включает ожидание показаний с ограничением по времени
func (t *LocationTracker) Watch() {
	t.watching = true
	t.armWatchdog()
}

func (t *LocationTracker) armWatchdog() {
	if t.stopWatchdog != nil {
		t.stopWatchdog()
		t.stopWatchdog = nil
	}
	t.watchGen++
	if !t.watching || t.opts.WatchTimeout <= 0 {
		return
	}

	gen := t.watchGen
	t.stopWatchdog = t.loop.AfterFunc(t.opts.WatchTimeout, func() {
		// таймер мог быть перезапущен, пока событие стояло в очереди
		if !t.watching || gen != t.watchGen {
			return
		}
		t.stopWatchdog = nil
		t.Fail(&PositionError{Code: PositionTimeout})
		t.armWatchdog()
	})
}

// Update применяет новое показание. Показание старше предыдущего по часам клиента игнорируется,
// показания без времени принимаются всегда.
func (t *LocationTracker) Update(fix models.PositionFix) bool {
	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "Update",
	})

	if !fix.Timestamp.IsZero() {
		if fix.Timestamp.Before(t.lastStamp) {
			log.WithField("fix_time", fix.Timestamp).Debug("Ignoring stale position fix")
			return false
		}
		t.lastStamp = fix.Timestamp
	}

	log.WithFields(logrus.Fields{
		"latitude":  fix.Point.Latitude,
		"longitude": fix.Point.Longitude,
		"accuracy":  math.Round(fix.Accuracy),
	}).Debug("High-accuracy position fix")

	t.view.Remove(t.marker)
	t.view.Remove(t.circle)

	popup := fmt.Sprintf("You are here<br>Accuracy: ±%d meters", int(math.Round(fix.Accuracy)))
	t.marker = t.view.AddMarker(GroupLocation, fix.Point, popup)
	t.circle = t.view.AddCircle(GroupLocation, fix.Point, fix.Accuracy, accuracyStyle)

	if t.view.Zoom() < t.opts.ZoomThreshold {
		t.view.SetView(fix.Point, t.opts.Zoom)
	}

	for ch := range t.waiters {
		ch <- fix.Point
		delete(t.waiters, ch)
	}

	t.armWatchdog()
	return true
}

// Fail показывает ошибку геолокации. Маркеры остаются на месте.
func (t *LocationTracker) Fail(err *PositionError) {
	t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "Fail",
		"code":    err.Code,
	}).Warn("Geolocation failed")

	publishNotice(t.loop.Async, t.notices, t.logger.WithField("service", "tracker"),
		notice.KindGPSError, "GPS Error: "+err.Error())
}

// NextFix ждет следующего показания. Вызывается вне цикла событий.
func (t *LocationTracker) NextFix(ctx context.Context) (models.GeoPoint, error) {
	ch := make(chan models.GeoPoint, 1)
	if err := t.loop.Call(ctx, func() { t.waiters[ch] = struct{}{} }); err != nil {
		return models.GeoPoint{}, fmt.Errorf("failed to wait for position: %w", err)
	}

	select {
	case p := <-ch:
		return p, nil
	case <-ctx.Done():
		_ = t.loop.Post(func() { delete(t.waiters, ch) })
		return models.GeoPoint{}, &PositionError{Code: PositionTimeout}
	}
}
