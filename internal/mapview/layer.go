package mapview

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/traffic_overlay/internal/models"
)

// LayerKind - вид слоя на карте
type LayerKind string

const (
	KindMarker  LayerKind = "marker"
	KindCircle  LayerKind = "circle"
	KindGeoJSON LayerKind = "geojson"
)

// Handle - непрозрачная ссылка на слой
type Handle uuid.UUID

// NoHandle - пустая ссылка
var NoHandle = Handle(uuid.Nil)

func (h Handle) String() string { return uuid.UUID(h).String() }

// IsZero сообщает, пустая ли ссылка
func (h Handle) IsZero() bool { return h == NoHandle }

// Style - оформление слоя
type Style struct {
	Color       string  `json:"color,omitempty"`
	FillColor   string  `json:"fillColor,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
	Weight      int     `json:"weight,omitempty"`
}

// Layer - элемент карты
type Layer struct {
	Handle Handle
	Kind   LayerKind
	// Group объединяет слои одного компонента (location, reports, route)
	Group  string
	Point  models.GeoPoint
	Radius float64
	Popup  string
	Style  Style
	Data   *geojson.FeatureCollection
}

// Bound возвращает границы слоя. false - у слоя нет ни одной геометрии.
func (l *Layer) Bound() (orb.Bound, bool) {
	switch l.Kind {
	case KindGeoJSON:
		var b orb.Bound
		found := false
		if l.Data == nil {
			return b, false
		}
		for _, f := range l.Data.Features {
			if f == nil || f.Geometry == nil {
				continue
			}
			if !found {
				b = f.Geometry.Bound()
				found = true
				continue
			}
			b = b.Union(f.Geometry.Bound())
		}
		return b, found
	case KindCircle:
		return circleBound(l.Point, l.Radius), true
	default:
		p := orb.Point{l.Point.Longitude, l.Point.Latitude}
		return p.Bound(), true
	}
}

func (l *Layer) features() []*geojson.Feature {
	props := geojson.Properties{
		"layer": l.Handle.String(),
		"kind":  string(l.Kind),
	}
	if l.Group != "" {
		props["group"] = l.Group
	}
	if l.Popup != "" {
		props["popup"] = l.Popup
	}
	if l.Style != (Style{}) {
		props["style"] = l.Style
	}

	switch l.Kind {
	case KindGeoJSON:
		out := make([]*geojson.Feature, 0, len(l.Data.Features))
		for _, src := range l.Data.Features {
			if src.Geometry == nil {
				continue
			}
			f := geojson.NewFeature(src.Geometry)
			for k, v := range src.Properties {
				f.Properties[k] = v
			}
			for k, v := range props {
				f.Properties[k] = v
			}
			out = append(out, f)
		}
		return out
	default:
		f := geojson.NewFeature(orb.Point{l.Point.Longitude, l.Point.Latitude})
		f.ID = l.Handle.String()
		f.Properties = props
		if l.Kind == KindCircle {
			f.Properties["radius"] = l.Radius
		}
		return []*geojson.Feature{f}
	}
}
