package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	request "andicot_proforma/internal/adapter/http/dto/request"
	response "andicot_proforma/internal/adapter/http/dto/response"
	"andicot_proforma/internal/domain/cart"
	"andicot_proforma/internal/usecase"
	"andicot_proforma/pkg"

	"github.com/gin-gonic/gin"
)

// EventUpdateContactForm tells the contact form a quote is waiting in the
// session mailbox.
const EventUpdateContactForm = "updateContactForm"

const defaultStreamKeepAlive = 25 * time.Second

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler drives the quote builder of one visitor session.
type QuoteHandler struct {
	usecase   usecase.IQuoteSessionUseCase
	keepAlive time.Duration
}

func NewQuoteHandler(uc usecase.IQuoteSessionUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, keepAlive: defaultStreamKeepAlive}
}

func (h *QuoteHandler) CreateSession(c *gin.Context) {
	v, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteView(v))
}

func (h *QuoteHandler) GetSession(c *gin.Context) {
	v, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *QuoteHandler) SelectService(c *gin.Context) {
	var payload request.SelectServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	v, err := h.usecase.SelectService(c.Request.Context(), c.Param("session_id"), payload.ServiceID)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *QuoteHandler) SetQuantity(c *gin.Context) {
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	v, err := h.usecase.SetQuantity(c.Request.Context(), c.Param("session_id"), *payload.Quantity)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *QuoteHandler) AddItem(c *gin.Context) {
	li, v, err := h.usecase.AddItem(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.AddItemResponse{
		Item:  response.FromLineItem(li),
		Quote: response.FromQuoteView(v),
	})
}

func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	v, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("session_id"), c.Param("uid"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

// MessagingLink returns the WhatsApp deep link; with ?redirect=1 it answers
// with a redirect instead.
func (h *QuoteHandler) MessagingLink(c *gin.Context) {
	link, err := h.usecase.MessagingLink(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	if c.Query("redirect") == "1" {
		c.Redirect(http.StatusFound, link)
		return
	}
	c.JSON(http.StatusOK, response.MessagingLinkResponse{URL: link})
}

func (h *QuoteHandler) HandOff(c *gin.Context) {
	msg, err := h.usecase.HandOffToContactForm(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.HandOffResponse{Message: msg})
}

// TakeHandOff answers 204 when nothing is waiting.
func (h *QuoteHandler) TakeHandOff(c *gin.Context) {
	msg, ok, err := h.usecase.TakeHandOff(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.HandOffResponse{Message: msg})
}

// StreamHandOff emits an updateContactForm event per hand-off until the client
// disconnects. Events carry no quote text; the form pulls it with TakeHandOff.
func (h *QuoteHandler) StreamHandOff(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("session_id")

	signals, err := h.usecase.SubscribeHandOff(ctx, sessionID)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-signals:
			if !ok {
				return false
			}
			c.SSEvent(EventUpdateContactForm, gin.H{"session_id": sessionID})
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quote session not found or expired", http.StatusNotFound)
	case errors.Is(err, cart.ErrNoServiceSelected):
		return pkg.NewDomainErrorSimple("NO_SERVICE_SELECTED", "Select a service before adding it", http.StatusUnprocessableEntity)
	case errors.Is(err, cart.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Service is not in the catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, cart.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
