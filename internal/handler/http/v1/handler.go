package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/traffic_overlay/internal/config"
	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultNoticeLimit = 20
	maxNoticeLimit     = 100
)

// StreamServer принимает WebSocket подключения
type StreamServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	session  service.OverlaySession
	stream   StreamServer
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(session service.OverlaySession, stream StreamServer, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		session:  session,
		stream:   stream,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bindAndValidate разбирает тело запроса и проверяет его. При ошибке ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get map configuration
// @Description Tile layers, initial view, geolocation options and navigation trigger for the client
// @Tags Map
// @Produce json
// @Success 200 {object} MapConfigResponse
// @Router /map/config [get]
func (h *Handler) getMapConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigToMapConfigResponse(h.cfg))
}

// @Summary Get map layers
// @Description Current viewport and all layers as a GeoJSON FeatureCollection
// @Tags Map
// @Produce json
// @Success 200 {object} mapview.Snapshot
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /map/layers [get]
func (h *Handler) getMapLayers(c *gin.Context) {
	snap, err := h.session.Snapshot(c.Request.Context())
	if err != nil {
		h.sessionError(c, "getMapLayers", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Subscribe to map updates
// @Description WebSocket stream of "layers" and "notice" events
// @Tags Map
// @Success 101 "Switching Protocols"
// @Router /map/stream [get]
func (h *Handler) streamMap(c *gin.Context) {
	if err := h.stream.ServeWS(c.Writer, c.Request); err != nil {
		h.logger.WithField("method", "streamMap").WithError(err).Warn("Failed to open stream")
	}
}

// @Summary Click on the map
// @Description Routes the click to the navigation planner while it collects points, otherwise submits a report with the description
// @Tags Map
// @Accept json
// @Produce json
// @Param click body ClickRequest true "Click position"
// @Success 200 {object} ClickResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /map/click [post]
func (h *Handler) clickMap(c *gin.Context) {
	var input ClickRequest
	log := h.logger.WithField("method", "clickMap")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	target, err := h.session.Click(c.Request.Context(), DTOToGeoPoint(input.Latitude, input.Longitude), input.Description)
	if err != nil {
		h.sessionError(c, "clickMap", err)
		return
	}
	c.JSON(http.StatusOK, ClickResponse{Target: string(target)})
}

// @Summary Double-click on the map
// @Description Clears the route and collected points
// @Tags Map
// @Produce json
// @Success 200 {object} ClearResponse
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /map/dblclick [post]
func (h *Handler) doubleClickMap(c *gin.Context) {
	cleared, err := h.session.DoubleClick(c.Request.Context())
	if err != nil {
		h.sessionError(c, "doubleClickMap", err)
		return
	}
	c.JSON(http.StatusOK, ClearResponse{Cleared: cleared})
}

// @Summary Get report filter
// @Tags Reports
// @Produce json
// @Success 200 {object} FilterResponse
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /reports/filter [get]
func (h *Handler) getFilter(c *gin.Context) {
	f, err := h.session.Filter(c.Request.Context())
	if err != nil {
		h.sessionError(c, "getFilter", err)
		return
	}
	c.JSON(http.StatusOK, FilterResponse{Filter: f.String()})
}

// @Summary Set report filter
// @Description Selects "all" or one report category and refreshes the feed
// @Tags Reports
// @Accept json
// @Produce json
// @Param filter body FilterRequest true "Filter value"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} map[string]string "Unknown filter"
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /reports/filter [put]
func (h *Handler) setFilter(c *gin.Context) {
	var input FilterRequest
	log := h.logger.WithField("method", "setFilter")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	f, err := models.ParseFilter(input.Filter)
	if err != nil {
		log.WithError(err).Warn("Unknown filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.session.SetFilter(c.Request.Context(), f); err != nil {
		h.sessionError(c, "setFilter", err)
		return
	}
	c.JSON(http.StatusOK, FilterResponse{Filter: f.String()})
}

// @Summary Report an incident at the current location
// @Description Waits for a fresh position fix and submits the report there
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body ReportHereRequest true "Report description"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or empty description"
// @Failure 422 {object} map[string]string "Location unavailable"
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /reports/here [post]
func (h *Handler) reportHere(c *gin.Context) {
	var input ReportHereRequest
	log := h.logger.WithField("method", "reportHere")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	err := h.session.ReportHere(c.Request.Context(), input.Description)
	switch {
	case err == nil:
		c.Status(http.StatusAccepted)
	case errors.Is(err, service.ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is empty"})
	case errors.Is(err, service.ErrLocationUnavailable):
		log.WithError(err).Warn("Location unavailable")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.sessionError(c, "reportHere", err)
	}
}

// @Summary Start navigation
// @Description Activates navigation mode: the next two clicks set the start point and the destination
// @Tags Navigation
// @Produce json
// @Success 200 {object} NavigationResponse
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /navigation/start [post]
func (h *Handler) startNavigation(c *gin.Context) {
	st, err := h.session.StartNavigation(c.Request.Context())
	if err != nil {
		h.sessionError(c, "startNavigation", err)
		return
	}
	c.JSON(http.StatusOK, ModelToNavigationResponse(st))
}

// @Summary Clear navigation
// @Tags Navigation
// @Produce json
// @Success 200 {object} ClearResponse
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /navigation/clear [post]
func (h *Handler) clearNavigation(c *gin.Context) {
	cleared, err := h.session.ClearNavigation(c.Request.Context())
	if err != nil {
		h.sessionError(c, "clearNavigation", err)
		return
	}
	c.JSON(http.StatusOK, ClearResponse{Cleared: cleared})
}

// @Summary Get navigation state
// @Tags Navigation
// @Produce json
// @Success 200 {object} NavigationResponse
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /navigation [get]
func (h *Handler) getNavigation(c *gin.Context) {
	st, err := h.session.Navigation(c.Request.Context())
	if err != nil {
		h.sessionError(c, "getNavigation", err)
		return
	}
	c.JSON(http.StatusOK, ModelToNavigationResponse(st))
}

// @Summary Update device location
// @Description Applies a position fix. Fixes older than the last accepted one are ignored.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body LocationRequest true "Position fix"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /location [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationRequest
	log := h.logger.WithField("method", "updateLocation")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	accepted, err := h.session.UpdateLocation(c.Request.Context(), DTOToPositionFix(input))
	if err != nil {
		h.sessionError(c, "updateLocation", err)
		return
	}
	c.JSON(http.StatusOK, LocationResponse{Accepted: accepted})
}

// @Summary Report a geolocation error
// @Tags Location
// @Accept json
// @Param error body LocationErrorRequest true "Geolocation error"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "Session stopped"
// @Router /location/error [post]
func (h *Handler) locationError(c *gin.Context) {
	var input LocationErrorRequest
	log := h.logger.WithField("method", "locationError")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	code, err := service.ParsePositionErrorCode(input.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.session.LocationError(c.Request.Context(), &service.PositionError{Code: code, Message: input.Message}); err != nil {
		h.sessionError(c, "locationError", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get recent notices
// @Description Newest first
// @Tags Notices
// @Produce json
// @Param limit query int false "Number of notices" default(20)
// @Success 200 {array} NoticeResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notices [get]
func (h *Handler) listNotices(c *gin.Context) {
	log := h.logger.WithField("method", "listNotices")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultNoticeLimit)))
	if err != nil || limit <= 0 {
		limit = defaultNoticeLimit
	}
	if limit > maxNoticeLimit {
		limit = maxNoticeLimit
	}

	notices, err := h.session.Notices(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list notices")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToNoticeResponses(notices))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sessionError отвечает на ошибку цикла событий: остановлен или клиент ушел
func (h *Handler) sessionError(c *gin.Context, method string, err error) {
	h.logger.WithField("method", method).WithError(err).Error("Session call failed")
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "map session unavailable"})
}
