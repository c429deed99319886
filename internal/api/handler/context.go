package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the caller's username injected by the Auth middleware.
// An empty username means the middleware did not run or the token carried
// no subject; either way the request is not authenticated.
func ctxActor(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
