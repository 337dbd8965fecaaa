package routes

import (
	"andicot_proforma/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", h.ListServices)
		catalog.GET("/services/:id", h.GetService)
		catalog.GET("/config", h.GetBusinessConfig)
	}
}
