package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: role must be non-empty
// (presence proves the middleware ran).
func ctxClaims(c echo.Context) (userID, username, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("id").(string)
	username, _ = c.Get("username").(string)
	return userID, username, role, nil
}

// ctxToken extracts the token identity claims used for logout.
func ctxToken(c echo.Context) (jti string, expiresAt time.Time) {
	jti, _ = c.Get("jti").(string)
	expiresAt, _ = c.Get("exp").(time.Time)
	return jti, expiresAt
}
