package service

import (
	"context"
	"errors"

	"github.com/shenikar/traffic_overlay/internal/config"
	"github.com/shenikar/traffic_overlay/internal/eventloop"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/sirupsen/logrus"
)

// NavState - состояние планировщика маршрута
type NavState int

const (
	NavIdle NavState = iota
	NavCollectingOrigin
	NavCollectingDestination
	NavRouteDisplayed
)

func (s NavState) String() string {
	switch s {
	case NavIdle:
		return "idle"
	case NavCollectingOrigin:
		return "collecting_origin"
	case NavCollectingDestination:
		return "collecting_destination"
	case NavRouteDisplayed:
		return "route_displayed"
	default:
		return "unknown"
	}
}

const (
	navActivatedMessage = "Navigation mode activated. Click on start point and then destination."
	navClearedMessage   = "Route cleared. Please select new start and destination points."
)

var routeStyle = mapview.Style{Color: "blue", Weight: 4}

// NavigationStatus - состояние планировщика для клиентов
type NavigationStatus struct {
	State       string           `json:"state"`
	Trigger     string           `json:"trigger"`
	Origin      *models.GeoPoint `json:"origin,omitempty"`
	Destination *models.GeoPoint `json:"destination,omitempty"`
	HasRoute    bool             `json:"has_route"`
}

// NavigationPlanner собирает две точки по кликам, запрашивает маршрут и рисует его.
// Методы вызываются в цикле событий.
type NavigationPlanner struct {
	loop    *eventloop.Loop
	view    *mapview.View
	routes  RouteProvider
	notices notice.Publisher
	logger  *logrus.Logger
	trigger string

	state   NavState
	points  []models.GeoPoint
	markers []mapview.Handle
	route   mapview.Handle
}

func NewNavigationPlanner(loop *eventloop.Loop, view *mapview.View, routes RouteProvider, notices notice.Publisher, logger *logrus.Logger, trigger string) *NavigationPlanner {
	p := &NavigationPlanner{
		loop:    loop,
		view:    view,
		routes:  routes,
		notices: notices,
		logger:  logger,
		trigger: trigger,
	}
	p.state = p.restState()
	return p
}

func (p *NavigationPlanner) restState() NavState {
	if p.trigger == config.NavigationTriggerAlways {
		return NavCollectingOrigin
	}
	return NavIdle
}

// Collecting - ждет ли планировщик клика
func (p *NavigationPlanner) Collecting() bool {
	return p.state == NavCollectingOrigin || p.state == NavCollectingDestination
}

// Activate включает режим навигации и сбрасывает несобранные точки
func (p *NavigationPlanner) Activate() {
	p.dropPoints()
	p.state = NavCollectingOrigin

	log := p.logger.WithFields(logrus.Fields{
		"service": "planner",
		"method":  "Activate",
	})
	log.Info("Navigation mode activated")
	publishNotice(p.loop.Async, p.notices, log, notice.KindNavigation, navActivatedMessage)
}

// Click принимает точку маршрута. Возвращает false, если клик не для планировщика.
func (p *NavigationPlanner) Click(pt models.GeoPoint) bool {
	switch p.state {
	case NavCollectingOrigin:
		p.addPoint(pt, "Start Point")
		p.state = NavCollectingDestination
		return true
	case NavCollectingDestination:
		p.addPoint(pt, "Destination")
		p.state = NavRouteDisplayed
		p.requestRoute(models.RouteRequest{Origin: p.points[0], Destination: p.points[1]})
		return true
	default:
		return false
	}
}

func (p *NavigationPlanner) addPoint(pt models.GeoPoint, label string) {
	p.points = append(p.points, pt)
	p.markers = append(p.markers, p.view.AddMarker(GroupRoute, pt, label))
}

func (p *NavigationPlanner) requestRoute(req models.RouteRequest) {
	log := p.logger.WithFields(logrus.Fields{
		"service": "planner",
		"method":  "requestRoute",
	})

	p.loop.Async(func(ctx context.Context) func() {
		fc, err := p.routes.Route(ctx, req)
		if err == nil && fc == nil {
			err = errors.New("empty route response")
		}
		return func() {
			if err != nil {
				log.WithError(err).Error("Routing error")
				return
			}
			p.view.Remove(p.route)
			p.route = p.view.AddGeoJSON(GroupRoute, fc, routeStyle)
			p.view.FitBounds(p.route)
			log.Info("Route displayed")
		}
	})
}

// Clear убирает маршрут и точки. Без маршрута и точек ничего не делает.
func (p *NavigationPlanner) Clear() bool {
	hadRoute := p.view.Remove(p.route)
	p.route = mapview.NoHandle
	hadPoints := p.dropPoints()
	p.state = p.restState()

	if !hadRoute && !hadPoints {
		return false
	}

	log := p.logger.WithFields(logrus.Fields{
		"service": "planner",
		"method":  "Clear",
	})
	log.Info("Route cleared")
	publishNotice(p.loop.Async, p.notices, log, notice.KindNavigation, navClearedMessage)
	return true
}

func (p *NavigationPlanner) dropPoints() bool {
	had := len(p.points) > 0
	for _, h := range p.markers {
		p.view.Remove(h)
	}
	p.markers = nil
	p.points = nil
	return had
}

// Status возвращает состояние для клиентов
func (p *NavigationPlanner) Status() NavigationStatus {
	st := NavigationStatus{
		State:    p.state.String(),
		Trigger:  p.trigger,
		HasRoute: !p.route.IsZero(),
	}
	if len(p.points) > 0 {
		origin := p.points[0]
		st.Origin = &origin
	}
	if len(p.points) > 1 {
		dest := p.points[1]
		st.Destination = &dest
	}
	return st
}
