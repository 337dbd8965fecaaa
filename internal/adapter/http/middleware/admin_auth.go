// Package middleware holds gin middleware shared by the route groups.
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"andicot_proforma/internal/config"
	"andicot_proforma/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminPasswordHeader carries the shared admin password.
const AdminPasswordHeader = "X-Admin-Password"

var (
	errAdminUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Admin password required", http.StatusUnauthorized)
	errAdminDisabled     = pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin access is not configured", http.StatusServiceUnavailable)
)

// AdminAuth gates the admin routes behind one shared password. A bcrypt
// ADMIN_PASSWORD_HASH takes precedence over a plain ADMIN_PASSWORD; with
// neither set every admin request is refused.
func AdminAuth(c config.AdminConfig) gin.HandlerFunc {
	check := passwordChecker(c)
	if check == nil {
		slog.Warn("[http][admin] no admin password configured, admin routes disabled")
	}
	return func(ctx *gin.Context) {
		if check == nil {
			ctx.AbortWithStatusJSON(errAdminDisabled.HTTPStatus, errAdminDisabled.ToHTTPError())
			return
		}
		given := ctx.GetHeader(AdminPasswordHeader)
		if given == "" || !check(given) {
			slog.Info("[http][admin] rejected admin request", "path", ctx.FullPath(), "ip", ctx.ClientIP())
			ctx.AbortWithStatusJSON(errAdminUnauthorized.HTTPStatus, errAdminUnauthorized.ToHTTPError())
			return
		}
		ctx.Next()
	}
}

func passwordChecker(c config.AdminConfig) func(string) bool {
	switch {
	case c.PasswordHash != "":
		hash := []byte(c.PasswordHash)
		return func(given string) bool {
			return bcrypt.CompareHashAndPassword(hash, []byte(given)) == nil
		}
	case c.Password != "":
		want := []byte(c.Password)
		return func(given string) bool {
			return subtle.ConstantTimeCompare(want, []byte(given)) == 1
		}
	default:
		return nil
	}
}
