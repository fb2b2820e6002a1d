package handler

import (
	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// decode binds and validates a request body. On ok=false the 400 response has
// already been written and err is the result of writing it.
func decode[T any](c echo.Context, what string) (req *T, ok bool, err error) {
	req = new(T)
	if bindErr := c.Bind(req); bindErr != nil {
		return nil, false, response.BindingError(c, "Invalid "+what+" input", bindErr)
	}
	if validErr := c.Validate(req); validErr != nil {
		return nil, false, response.ValidationError(c, validErr)
	}

	return req, true, nil
}

// caller returns the authenticated user. On ok=false the 401 response has
// already been written.
func caller(c echo.Context) (userID uuid.UUID, ok bool, err error) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}
