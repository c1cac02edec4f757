package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	admin := APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger)

	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("/resident/:residentId", h.listResidentIncidents)
		incidents.GET("/resident/:residentId/latest", h.latestResidentIncident)
		incidents.GET("/:id", h.getIncident)

		// Административные маршруты
		incidents.GET("", admin, h.listIncidents)
		incidents.GET("/stats", admin, h.getStats)
		incidents.PUT("/:id/status", admin, h.updateIncidentStatus)
	}

	residents := api.Group("/residents")
	{
		residents.GET("", h.listResidents)
		residents.GET("/:id", h.getResident)
		residents.GET("/:id/contacts", h.getResidentContacts)

		residents.POST("", admin, h.createResident)
		residents.POST("/:id/contacts", admin, h.addResidentContact)
	}

	services := api.Group("/services")
	{
		services.GET("", h.listServices)
		services.GET("/:id", h.getService)
	}

	api.GET("/system/health", h.healthCheck)
}
