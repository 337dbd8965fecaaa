package handlers

import (
	"errors"
	"net/http"

	request "andicot_proforma/internal/adapter/http/dto/request"
	response "andicot_proforma/internal/adapter/http/dto/response"
	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/usecase"
	"andicot_proforma/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)

// ContactHandler handles contact intake and the admin CRM table.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidContactPayload)
		return
	}
	m, err := h.usecase.Submit(c.Request.Context(), payload.ToSubmission())
	if err != nil {
		writeError(c, mapContactError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromContactMessage(m))
}

// SubmitQuote stores the quote of a session as a contact message.
func (h *ContactHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidContactPayload)
		return
	}
	m, err := h.usecase.SubmitQuote(c.Request.Context(), usecase.QuoteSubmission{
		SessionID: c.Param("session_id"),
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Message:   payload.Message,
	})
	if err != nil {
		writeError(c, mapContactError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromContactMessage(m))
}

func (h *ContactHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapContactError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContactMessages(list))
}

func (h *ContactHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromContactStatuses(entities.ContactStatuses))
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidContactPayload)
		return
	}
	m, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ContactStatus(payload.Status))
	if err != nil {
		writeError(c, mapContactError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContactMessage(m))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapContactError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactInput):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Name, a valid email and a message are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContactID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContactStatus):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT_STATUS", "Unknown contact status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact message not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrSessionNotFound):
		return mapQuoteError(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
