package models

import "time"

// TimestampLayout совпадает с форматом Date.toISOString
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// GeoPoint - точка на карте
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LonLat возвращает координаты в порядке [lon, lat]
func (p GeoPoint) LonLat() [2]float64 {
	return [2]float64{p.Longitude, p.Latitude}
}

// IncidentReport - сообщение о происшествии на дороге
type IncidentReport struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Type        TypeTag `json:"type"`
	Timestamp   string  `json:"timestamp"`
}

func (r IncidentReport) Point() GeoPoint {
	return GeoPoint{Latitude: r.Latitude, Longitude: r.Longitude}
}

// ReportTime разбирает временную метку отчета
func (r IncidentReport) ReportTime() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, r.Timestamp)
}

// RouteRequest - запрос маршрута между двумя точками
type RouteRequest struct {
	Origin      GeoPoint
	Destination GeoPoint
}

// Coordinates возвращает пары [lon, lat] в порядке следования
func (r RouteRequest) Coordinates() [][2]float64 {
	return [][2]float64{r.Origin.LonLat(), r.Destination.LonLat()}
}

// PositionFix - одно показание геолокации устройства
type PositionFix struct {
	Point     GeoPoint
	Accuracy  float64
	Timestamp time.Time
}
