// Package handler contains the HTTP layer: request binding, auth
// context extraction and translation of service errors into status
// codes.  Handlers stay thin; business rules live in the service
// package.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/service"
)

// dateLayout is the wire format for DATE fields in request bodies.
const dateLayout = "2006-01-02"

// getAccountID extracts the authenticated account id from the context.
// JWT numeric claims decode as float64, but the value may also arrive
// as a string or integer depending on how the token was minted.
func getAccountID(c echo.Context) (uint64, error) {
	v := c.Get("account_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid account_id in context")
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint64, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, errors.New("invalid id")
	}
	return n, nil
}

// writeServiceError maps the service error kinds onto HTTP statuses:
// not found -> 404, conflict -> 409, validation -> 400, anything else
// -> 500 with a generic message.  Echo HTTP errors pass through so
// authorization checks can pick their own status.
func writeServiceError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
