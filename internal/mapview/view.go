// Package mapview хранит состояние карты: слои и окно просмотра.
// View не потокобезопасен и используется только из горутины цикла событий.
package mapview

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/traffic_overlay/internal/models"
)

// Options - параметры карты
type Options struct {
	Center  models.GeoPoint
	Zoom    int
	MaxZoom int
	// Размер окна в пикселях, используется при подгонке границ
	Width  int
	Height int
}

// DefaultOptions - начальный вид как у веб-клиента: [20, 0], зум 2
func DefaultOptions() Options {
	return Options{
		Center:  models.GeoPoint{Latitude: 20, Longitude: 0},
		Zoom:    2,
		MaxZoom: 22,
		Width:   1024,
		Height:  768,
	}
}

// Viewport - текущее окно просмотра
type Viewport struct {
	Center models.GeoPoint `json:"center"`
	Zoom   int             `json:"zoom"`
}

// Snapshot - снимок карты для клиентов
type Snapshot struct {
	Viewport Viewport                   `json:"viewport"`
	Layers   *geojson.FeatureCollection `json:"layers"`
}

type View struct {
	opts     Options
	layers   map[Handle]*Layer
	order    []Handle
	viewport Viewport
	dirty    bool
}

func New(opts Options) *View {
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = DefaultOptions().MaxZoom
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultOptions().Width, DefaultOptions().Height
	}
	return &View{
		opts:     opts,
		layers:   make(map[Handle]*Layer),
		viewport: Viewport{Center: opts.Center, Zoom: opts.Zoom},
	}
}

func (v *View) add(l *Layer) Handle {
	l.Handle = Handle(uuid.New())
	v.layers[l.Handle] = l
	v.order = append(v.order, l.Handle)
	v.dirty = true
	return l.Handle
}

// AddMarker добавляет маркер с всплывающей подписью
func (v *View) AddMarker(group string, p models.GeoPoint, popup string) Handle {
	return v.add(&Layer{Kind: KindMarker, Group: group, Point: p, Popup: popup})
}

// AddCircle добавляет окружность радиусом radius метров
func (v *View) AddCircle(group string, center models.GeoPoint, radius float64, style Style) Handle {
	return v.add(&Layer{Kind: KindCircle, Group: group, Point: center, Radius: radius, Style: style})
}

// AddGeoJSON добавляет слой с геометрией
func (v *View) AddGeoJSON(group string, fc *geojson.FeatureCollection, style Style) Handle {
	if fc == nil {
		fc = geojson.NewFeatureCollection()
	}
	return v.add(&Layer{Kind: KindGeoJSON, Group: group, Data: fc, Style: style})
}

// Remove удаляет слой. Удаление неизвестного слоя ничего не делает.
func (v *View) Remove(h Handle) bool {
	if _, ok := v.layers[h]; !ok {
		return false
	}
	delete(v.layers, h)
	for i, id := range v.order {
		if id == h {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
	v.dirty = true
	return true
}

// Layer возвращает слой по ссылке
func (v *View) Layer(h Handle) (*Layer, bool) {
	l, ok := v.layers[h]
	return l, ok
}

// Layers возвращает слои группы в порядке добавления. Пустая группа - все слои.
func (v *View) Layers(group string) []*Layer {
	out := make([]*Layer, 0, len(v.order))
	for _, h := range v.order {
		l := v.layers[h]
		if group == "" || l.Group == group {
			out = append(out, l)
		}
	}
	return out
}

func (v *View) Len() int { return len(v.layers) }

// SetView центрирует карту с заданным зумом
func (v *View) SetView(center models.GeoPoint, zoom int) {
	if zoom > v.opts.MaxZoom {
		zoom = v.opts.MaxZoom
	}
	if zoom < 0 {
		zoom = 0
	}
	v.viewport = Viewport{Center: center, Zoom: zoom}
	v.dirty = true
}

func (v *View) Zoom() int { return v.viewport.Zoom }

func (v *View) Viewport() Viewport { return v.viewport }

// FitBounds подгоняет окно под границы указанных слоев
func (v *View) FitBounds(handles ...Handle) bool {
	var b orb.Bound
	found := false
	for _, h := range handles {
		l, ok := v.layers[h]
		if !ok {
			continue
		}
		lb, ok := l.Bound()
		if !ok {
			continue
		}
		if !found {
			b = lb
			found = true
			continue
		}
		b = b.Union(lb)
	}
	if !found {
		return false
	}

	c := b.Center()
	v.SetView(models.GeoPoint{Latitude: c[1], Longitude: c[0]},
		zoomForBound(b, v.opts.Width, v.opts.Height, v.opts.MaxZoom))
	return true
}

// Snapshot собирает все слои в одну FeatureCollection
func (v *View) Snapshot() Snapshot {
	fc := geojson.NewFeatureCollection()
	for _, h := range v.order {
		for _, f := range v.layers[h].features() {
			fc.Append(f)
		}
	}
	return Snapshot{Viewport: v.viewport, Layers: fc}
}

// TakeDirty сообщает, менялась ли карта с прошлого вызова, и сбрасывает флаг
func (v *View) TakeDirty() bool {
	d := v.dirty
	v.dirty = false
	return d
}
