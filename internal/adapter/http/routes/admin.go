package routes

import (
	"andicot_proforma/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

// addAdminRoutes expects rg to already carry the admin auth middleware.
func addAdminRoutes(rg *gin.RouterGroup, catalog *handlers.CatalogHandler, contact *handlers.ContactHandler) {
	messages := rg.Group(PathContactMessages)
	{
		messages.GET("", contact.List)
		messages.PATCH("/:id/status", contact.UpdateStatus)
		messages.DELETE("/:id", contact.Delete)
	}
	rg.GET("/contact-statuses", contact.Statuses)

	services := rg.Group("/services")
	{
		services.PUT("/:id", catalog.SaveService)
		services.PUT("/:id/image", catalog.UploadServiceImage)
	}
	rg.PUT("/config", catalog.SaveBusinessConfig)
}
