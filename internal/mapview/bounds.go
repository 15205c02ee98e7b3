package mapview

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/shenikar/traffic_overlay/internal/models"
)

const tileSize = 256.0

// circleBound - прямоугольник, описанный вокруг окружности радиуса radius метров
func circleBound(center models.GeoPoint, radius float64) orb.Bound {
	return geo.NewBoundAroundPoint(orb.Point{center.Longitude, center.Latitude}, radius)
}

func mercatorY(lat float64) float64 {
	lat = math.Max(math.Min(lat, 85.0511), -85.0511)
	rad := lat * math.Pi / 180
	return math.Log(math.Tan(math.Pi/4 + rad/2))
}

// zoomForBound вычисляет максимальный целый зум, при котором bound помещается в окно width x height
func zoomForBound(b orb.Bound, width, height, maxZoom int) int {
	lonSpan := b.Max[0] - b.Min[0]
	ySpan := mercatorY(b.Max[1]) - mercatorY(b.Min[1])

	zoom := float64(maxZoom)
	if lonSpan > 0 {
		zoom = math.Min(zoom, math.Log2(float64(width)*360/(lonSpan*tileSize)))
	}
	if ySpan > 0 {
		zoom = math.Min(zoom, math.Log2(float64(height)*2*math.Pi/(ySpan*tileSize)))
	}

	z := int(math.Floor(zoom))
	if z < 0 {
		return 0
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
