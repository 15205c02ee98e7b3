package v1

import (
	"github.com/shenikar/traffic_overlay/internal/classifier"
	"github.com/shenikar/traffic_overlay/internal/config"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/shenikar/traffic_overlay/internal/service"
)

const (
	tomTomBaseURL    = "https://api.tomtom.com/map/1/tile/basic/main/{z}/{x}/{y}.png?key="
	tomTomTrafficURL = "https://api.tomtom.com/traffic/map/4/tile/flow/relative0/{z}/{x}/{y}.png?key="
)

// DTOToGeoPoint преобразует координаты из запроса в доменную точку.
// Вызывается после валидации, указатели не nil.
func DTOToGeoPoint(lat, lon *float64) models.GeoPoint {
	return models.GeoPoint{Latitude: *lat, Longitude: *lon}
}

// DTOToPositionFix преобразует показание геолокации в доменную модель
func DTOToPositionFix(req LocationRequest) models.PositionFix {
	fix := models.PositionFix{
		Point:    DTOToGeoPoint(req.Latitude, req.Longitude),
		Accuracy: req.Accuracy,
	}
	if req.Timestamp != nil {
		fix.Timestamp = *req.Timestamp
	}
	return fix
}

func geoPointResponse(p *models.GeoPoint) *GeoPointResponse {
	if p == nil {
		return nil
	}
	return &GeoPointResponse{Latitude: p.Latitude, Longitude: p.Longitude}
}

// ModelToNavigationResponse преобразует состояние планировщика в DTO
func ModelToNavigationResponse(st service.NavigationStatus) NavigationResponse {
	return NavigationResponse{
		State:       st.State,
		Trigger:     st.Trigger,
		Origin:      geoPointResponse(st.Origin),
		Destination: geoPointResponse(st.Destination),
		HasRoute:    st.HasRoute,
	}
}

// ModelsToNoticeResponses преобразует уведомления в DTO
func ModelsToNoticeResponses(notices []notice.Notice) []NoticeResponse {
	responses := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		responses[i] = NoticeResponse{
			ID:        n.ID,
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}

// ConfigToMapConfigResponse собирает конфигурацию карты для клиента
func ConfigToMapConfigResponse(cfg *config.Config) MapConfigResponse {
	view := mapview.DefaultOptions()
	if cfg.MapMaxZoom > 0 {
		view.MaxZoom = cfg.MapMaxZoom
	}

	filters := []string{models.FilterAll}
	categories := make([]CategoryResponse, 0, len(models.TypeTags))
	for _, t := range models.TypeTags {
		filters = append(filters, string(t))
		categories = append(categories, CategoryResponse{Name: string(t), Synonyms: classifier.Synonyms(t)})
	}

	return MapConfigResponse{
		Tiles: []TileLayerResponse{
			{
				Name:        "base",
				URL:         tomTomBaseURL + cfg.TomTomAPIKey,
				Attribution: "&copy; TomTom",
				MaxZoom:     view.MaxZoom,
			},
			{
				Name:        "traffic",
				URL:         tomTomTrafficURL + cfg.TomTomAPIKey,
				Attribution: "&copy; TomTom Traffic",
				Opacity:     0.6,
			},
		},
		View: ViewResponse{
			Center:  GeoPointResponse{Latitude: view.Center.Latitude, Longitude: view.Center.Longitude},
			Zoom:    view.Zoom,
			MaxZoom: view.MaxZoom,
		},
		Geolocation: GeolocationOptionsResponse{
			EnableHighAccuracy: true,
			TimeoutMs:          cfg.LocationWatchTimeout.Milliseconds(),
			MaximumAgeMs:       0,
		},
		NavigationTrigger: cfg.NavigationTrigger,
		Filters:           filters,
		Categories:        categories,
		PollIntervalMs:    cfg.ReportsPollInterval.Milliseconds(),
	}
}
