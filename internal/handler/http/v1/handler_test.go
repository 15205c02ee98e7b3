package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/traffic_overlay/internal/config"
	"github.com/shenikar/traffic_overlay/internal/eventloop"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/shenikar/traffic_overlay/internal/service"
	"github.com/shenikar/traffic_overlay/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type streamFunc func(w http.ResponseWriter, r *http.Request) error

func (f streamFunc) ServeWS(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

// newTestHandler создает Handler с мокированной сессией
func newTestHandler(t *testing.T) (*mocks.MockOverlaySession, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockSession := mocks.NewMockOverlaySession(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		TomTomAPIKey:         "tt-key",
		MapMaxZoom:           22,
		LocationWatchTimeout: 30 * time.Second,
		ReportsPollInterval:  5 * time.Second,
		NavigationTrigger:    config.NavigationTriggerButton,
	}

	stream := streamFunc(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusTeapot)
		return nil
	})
	handler := NewHandler(mockSession, stream, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockSession, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func ptr(v float64) *float64 { return &v }

func TestGetMapConfig(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MapConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tiles, 2)
	assert.Equal(t, "https://api.tomtom.com/map/1/tile/basic/main/{z}/{x}/{y}.png?key=tt-key", resp.Tiles[0].URL)
	assert.Equal(t, 22, resp.Tiles[0].MaxZoom)
	assert.Equal(t, 0.6, resp.Tiles[1].Opacity)
	assert.Equal(t, 2, resp.View.Zoom)
	assert.Equal(t, 20.0, resp.View.Center.Latitude)
	assert.True(t, resp.Geolocation.EnableHighAccuracy)
	assert.Equal(t, int64(30000), resp.Geolocation.TimeoutMs)
	assert.Equal(t, "button", resp.NavigationTrigger)
	assert.Equal(t, []string{"all", "Accident", "Traffic Jam", "Road Block", "Construction", "Other"}, resp.Filters)
	require.Len(t, resp.Categories, 5)
	assert.Contains(t, resp.Categories[3].Synonyms, "road work")
	assert.Empty(t, resp.Categories[4].Synonyms)
}

func TestGetMapLayers_Success(t *testing.T) {
	mockSession, router := newTestHandler(t)
	view := mapview.New(mapview.DefaultOptions())
	view.AddMarker(service.GroupReports, models.GeoPoint{Latitude: 1, Longitude: 2}, "popup")

	mockSession.EXPECT().Snapshot(gomock.Any()).Return(view.Snapshot(), nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/layers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Viewport mapview.Viewport          `json:"viewport"`
		Layers   geojson.FeatureCollection `json:"layers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Viewport.Zoom)
	assert.Len(t, resp.Layers.Features, 1)
}

func TestGetMapLayers_SessionStopped(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().Snapshot(gomock.Any()).Return(mapview.Snapshot{}, eventloop.ErrStopped).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/layers", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "map session unavailable")
}

func TestStreamMap_DelegatesToStream(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/stream", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestClickMap_Success(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().
		Click(gomock.Any(), models.GeoPoint{Latitude: 0, Longitude: 20}, "crash").
		Return(service.ClickReport, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/map/click",
		jsonBody(t, ClickRequest{Latitude: ptr(0), Longitude: ptr(20), Description: "crash"}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"target":"report"}`, w.Body.String())
}

func TestClickMap_InvalidJSON(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().Click(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сессия не должна вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/map/click", bytes.NewBufferString(`{"latitude": 1`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestClickMap_ValidationError(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().Click(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/map/click", jsonBody(t, ClickRequest{Latitude: ptr(95), Longitude: ptr(20)}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Latitude' failed on the 'latitude' tag")

	w = makeRequest(router, http.MethodPost, "/api/v1/map/click", bytes.NewBufferString(`{"latitude": 10}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Longitude' failed on the 'required' tag")
}

func TestDoubleClickMap(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().DoubleClick(gomock.Any()).Return(true, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/map/dblclick", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cleared":true}`, w.Body.String())
}

func TestSetFilter_Success(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().SetFilter(gomock.Any(), models.Filter{Tag: models.TypeTrafficJam}).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/reports/filter", jsonBody(t, FilterRequest{Filter: "Traffic Jam"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"filter":"Traffic Jam"}`, w.Body.String())
}

func TestSetFilter_Unknown(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().SetFilter(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/reports/filter", jsonBody(t, FilterRequest{Filter: "Flood"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Flood")
}

func TestSetFilter_BodyField(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().SetFilter(gomock.Any(), models.Filter{Tag: models.TypeConstruction}).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/reports/filter", bytes.NewBufferString(`{"filter":"Construction"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"filter":"Construction"}`, w.Body.String())

	w = makeRequest(router, http.MethodPut, "/api/v1/reports/filter", bytes.NewBufferString(`{"type":"Construction"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFilter(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().Filter(gomock.Any()).Return(models.Filter{All: true}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/filter", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"filter":"all"}`, w.Body.String())
}

func TestReportHere(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "accepted", err: nil, wantStatus: http.StatusAccepted},
		{name: "blank description", err: service.ErrEmptyDescription, wantStatus: http.StatusBadRequest},
		{name: "no location", err: fmt.Errorf("%w: timeout", service.ErrLocationUnavailable), wantStatus: http.StatusUnprocessableEntity},
		{name: "session stopped", err: eventloop.ErrStopped, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession, router := newTestHandler(t)
			mockSession.EXPECT().ReportHere(gomock.Any(), "pothole").Return(tt.err).Times(1)

			w := makeRequest(router, http.MethodPost, "/api/v1/reports/here", jsonBody(t, ReportHereRequest{Description: "pothole"}))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestReportHere_MissingDescription(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().ReportHere(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/here", bytes.NewBufferString(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartNavigation(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().StartNavigation(gomock.Any()).
		Return(service.NavigationStatus{State: "collecting_origin", Trigger: "button"}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/navigation/start", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp NavigationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "collecting_origin", resp.State)
	assert.Nil(t, resp.Origin)
}

func TestGetNavigation(t *testing.T) {
	mockSession, router := newTestHandler(t)
	origin := models.GeoPoint{Latitude: 10, Longitude: 20}
	mockSession.EXPECT().Navigation(gomock.Any()).
		Return(service.NavigationStatus{State: "collecting_destination", Origin: &origin}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/navigation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp NavigationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Origin)
	assert.Equal(t, 20.0, resp.Origin.Longitude)
	assert.Nil(t, resp.Destination)
}

func TestClearNavigation(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().ClearNavigation(gomock.Any()).Return(false, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/navigation/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cleared":false}`, w.Body.String())
}

func TestUpdateLocation(t *testing.T) {
	mockSession, router := newTestHandler(t)
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	mockSession.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, fix models.PositionFix) (bool, error) {
			assert.Equal(t, models.GeoPoint{Latitude: 55.75, Longitude: 37.61}, fix.Point)
			assert.Equal(t, 12.5, fix.Accuracy)
			assert.True(t, ts.Equal(fix.Timestamp))
			return true, nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location",
		jsonBody(t, LocationRequest{Latitude: ptr(55.75), Longitude: ptr(37.61), Accuracy: 12.5, Timestamp: &ts}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accepted":true}`, w.Body.String())
}

func TestUpdateLocation_NegativeAccuracy(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/location",
		jsonBody(t, LocationRequest{Latitude: ptr(1), Longitude: ptr(1), Accuracy: -1}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationError(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().
		LocationError(gomock.Any(), &service.PositionError{Code: service.PositionPermissionDenied}).
		Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/error", jsonBody(t, LocationErrorRequest{Code: "permission_denied"}))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLocationError_UnknownCode(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().LocationError(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/error", jsonBody(t, LocationErrorRequest{Code: "solar_flare"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNotices(t *testing.T) {
	mockSession, router := newTestHandler(t)
	n := notice.New(notice.KindReportConfirmation, "Report submitted successfully")
	mockSession.EXPECT().Notices(gomock.Any(), 100).Return([]notice.Notice{n}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/notices?limit=500", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []NoticeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, n.ID, resp[0].ID)
	assert.Equal(t, "report_confirmation", resp[0].Kind)
}

func TestListNotices_DefaultLimitAndError(t *testing.T) {
	mockSession, router := newTestHandler(t)
	mockSession.EXPECT().Notices(gomock.Any(), 20).Return(nil, errors.New("redis down")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/notices?limit=abc", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
