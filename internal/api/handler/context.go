package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty
// tenant_id proves the middleware ran and the token carried a tenant.
// A token without one is structurally valid but operationally unusable.
func ctxIdentity(c echo.Context) (userID, tenantID string, err error) {
	tenantID, _ = c.Get("tenant_id").(string)
	if tenantID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	return userID, tenantID, nil
}
