package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/service"
)

const routingServiceName = "routing service"

// RouteRepository запрашивает маршруты у openrouteservice
type RouteRepository struct {
	baseURL    string
	apiKey     string
	profile    string
	httpClient *http.Client
}

func NewRouteRepository(baseURL, apiKey, profile string, httpClient *http.Client) service.RouteProvider {
	return &RouteRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		profile:    profile,
		httpClient: httpClient,
	}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

// Route возвращает геометрию маршрута как GeoJSON
func (r *RouteRepository) Route(ctx context.Context, route models.RouteRequest) (*geojson.FeatureCollection, error) {
	payload, err := json.Marshal(directionsRequest{Coordinates: route.Coordinates()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal directions request: %w", err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", r.baseURL, r.profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}
	req.Header.Set("Authorization", r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request directions: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(routingServiceName, resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read directions response: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode directions geojson: %w", err)
	}
	return fc, nil
}
