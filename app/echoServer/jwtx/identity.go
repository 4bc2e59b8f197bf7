// app/echoServer/jwtx/identity.go
package jwtx

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// Helpers for reading the identity RequireAuth attached to the request.

func UserIDFromContext(c echo.Context) (string, error) {
	id, ok := c.Get("user_id").(string)
	if !ok || id == "" {
		return "", errors.New("no identity in context")
	}
	return id, nil
}

func IsAdmin(c echo.Context) bool {
	isAdmin, _ := c.Get("is_admin").(bool)
	return isAdmin
}
