package handlers

import (
	"log/slog"
	"net/http"

	"andicot_proforma/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		slog.Error("[http][handler] request failed",
			"method", c.Request.Method, "path", c.FullPath(), "code", appErr.Code, "error", appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
