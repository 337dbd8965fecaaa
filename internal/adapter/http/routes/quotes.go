package routes

import (
	"andicot_proforma/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler, contact *handlers.ContactHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateSession)
		quotes.GET("/:session_id", h.GetSession)
		quotes.PUT("/:session_id/selection", h.SelectService)
		quotes.PUT("/:session_id/quantity", h.SetQuantity)
		quotes.POST("/:session_id/items", h.AddItem)
		quotes.DELETE("/:session_id/items/:uid", h.RemoveItem)
		quotes.GET("/:session_id/whatsapp", h.MessagingLink)
		quotes.POST("/:session_id/handoff", h.HandOff)
		quotes.GET("/:session_id/handoff", h.TakeHandOff)
		quotes.GET("/:session_id/handoff/stream", h.StreamHandOff)
		quotes.POST("/:session_id/contact", contact.SubmitQuote)
	}
}
