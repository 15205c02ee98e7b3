package v1

import (
	"time"

	"github.com/google/uuid"
)

// ClickRequest DTO для клика по карте
// @Description DTO для клика по карте. Описание нужно, только если клик создает сообщение.
type ClickRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Description string   `json:"description,omitempty" validate:"max=1000"`
}

// ClickResponse DTO с результатом клика
// @Description Кто обработал клик: navigation, report или ignored
type ClickResponse struct {
	Target string `json:"target"`
}

// ClearResponse DTO с результатом сброса маршрута
type ClearResponse struct {
	Cleared bool `json:"cleared"`
}

// FilterRequest DTO для выбора фильтра ленты
// @Description all или имя категории
type FilterRequest struct {
	Filter string `json:"filter" validate:"required"`
}

// FilterResponse DTO с текущим фильтром
type FilterResponse struct {
	Filter string `json:"filter"`
}

// ReportHereRequest DTO для сообщения в текущем местоположении
type ReportHereRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
}

// LocationRequest DTO с показанием геолокации
// @Description DTO с показанием геолокации устройства
type LocationRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Accuracy  float64    `json:"accuracy" validate:"gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LocationResponse DTO с результатом обновления местоположения
type LocationResponse struct {
	Accepted bool `json:"accepted"`
}

// LocationErrorRequest DTO с ошибкой геолокации
type LocationErrorRequest struct {
	Code    string `json:"code" validate:"required,oneof=permission_denied position_unavailable timeout"`
	Message string `json:"message,omitempty"`
}

// GeoPointResponse DTO точки
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NavigationResponse DTO с состоянием навигации
type NavigationResponse struct {
	State       string            `json:"state"`
	Trigger     string            `json:"trigger"`
	Origin      *GeoPointResponse `json:"origin,omitempty"`
	Destination *GeoPointResponse `json:"destination,omitempty"`
	HasRoute    bool              `json:"has_route"`
}

// NoticeResponse DTO уведомления
type NoticeResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TileLayerResponse DTO слоя тайлов
type TileLayerResponse struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Attribution string  `json:"attribution"`
	MaxZoom     int     `json:"max_zoom,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
}

// GeolocationOptionsResponse DTO параметров геолокации для клиента
type GeolocationOptionsResponse struct {
	EnableHighAccuracy bool  `json:"enable_high_accuracy"`
	TimeoutMs          int64 `json:"timeout_ms"`
	MaximumAgeMs       int64 `json:"maximum_age_ms"`
}

// ViewResponse DTO начального вида карты
type ViewResponse struct {
	Center  GeoPointResponse `json:"center"`
	Zoom    int              `json:"zoom"`
	MaxZoom int              `json:"max_zoom"`
}

// CategoryResponse DTO категории сообщений и ее синонимов
type CategoryResponse struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

// MapConfigResponse DTO конфигурации карты для клиента
// @Description Тайлы, начальный вид, параметры геолокации и режим навигации
type MapConfigResponse struct {
	Tiles             []TileLayerResponse        `json:"tiles"`
	View              ViewResponse               `json:"view"`
	Geolocation       GeolocationOptionsResponse `json:"geolocation"`
	NavigationTrigger string                     `json:"navigation_trigger"`
	Filters           []string                   `json:"filters"`
	Categories        []CategoryResponse         `json:"categories"`
	PollIntervalMs    int64                      `json:"poll_interval_ms"`
}
