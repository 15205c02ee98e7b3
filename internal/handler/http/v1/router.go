package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Карта и жесты пользователя
	mapGroup := api.Group("/map")
	{
		mapGroup.GET("/config", h.getMapConfig)
		mapGroup.GET("/layers", h.getMapLayers)
		mapGroup.GET("/stream", h.streamMap)
		mapGroup.POST("/click", h.clickMap)
		mapGroup.POST("/dblclick", h.doubleClickMap)
	}

	// Лента сообщений
	reports := api.Group("/reports")
	{
		reports.GET("/filter", h.getFilter)
		reports.PUT("/filter", h.setFilter)
		reports.POST("/here", h.reportHere)
	}

	// Навигация
	navigation := api.Group("/navigation")
	{
		navigation.GET("", h.getNavigation)
		navigation.POST("/start", h.startNavigation)
		navigation.POST("/clear", h.clearNavigation)
	}

	// Геолокация устройства
	api.POST("/location", h.updateLocation)
	api.POST("/location/error", h.locationError)

	api.GET("/notices", h.listNotices)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
