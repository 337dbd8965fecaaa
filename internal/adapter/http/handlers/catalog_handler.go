package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "andicot_proforma/internal/adapter/http/dto/request"
	response "andicot_proforma/internal/adapter/http/dto/response"
	"andicot_proforma/internal/usecase"
	"andicot_proforma/pkg"

	"github.com/gin-gonic/gin"
)

const serviceImageField = "image"

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	errInvalidConfigPayload  = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid business config payload", http.StatusBadRequest)
	errMissingImage          = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Multipart field \"image\" is required", http.StatusBadRequest)
)

// CatalogHandler serves the public catalog and its admin editing endpoints.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(list))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

func (h *CatalogHandler) GetBusinessConfig(c *gin.Context) {
	cfg, err := h.usecase.GetBusinessConfig(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessConfig(cfg))
}

func (h *CatalogHandler) SaveService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidServicePayload)
		return
	}

	saved, err := h.usecase.SaveService(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(saved))
}

// UploadServiceImage accepts a multipart form with the picture in "image".
func (h *CatalogHandler) UploadServiceImage(c *gin.Context) {
	fh, err := c.FormFile(serviceImageField)
	if err != nil {
		writeError(c, errMissingImage)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, errMissingImage)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	updated, err := h.usecase.UploadServiceImage(c.Request.Context(), c.Param("id"), usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: strings.TrimSpace(contentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *CatalogHandler) SaveBusinessConfig(c *gin.Context) {
	var payload request.BusinessConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidConfigPayload)
		return
	}

	saved, err := h.usecase.SaveBusinessConfig(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessConfig(saved))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceTitle), errors.Is(err, usecase.ErrInvalidServicePrice):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Image must be jpeg, png, webp or gif up to 5 MB", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBlobStoreNotConfigured):
		return pkg.NewDomainErrorSimple("UPLOADS_DISABLED", "Image uploads are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
