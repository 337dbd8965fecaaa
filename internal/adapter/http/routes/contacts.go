package routes

import (
	"andicot_proforma/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathContactMessages = "/contact-messages"

func addContactRoutes(rg *gin.RouterGroup, h *handlers.ContactHandler) {
	rg.POST(PathContactMessages, h.Submit)
}
