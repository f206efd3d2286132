package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Gaana-Shree-S/ecommerce/internal/service"
	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
)

func errJSON(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, transport.ErrorResponse{
		Error: transport.ErrorBody{Kind: kind, Message: message},
	})
}

// respondError maps the service error taxonomy onto HTTP. Unauthorized is
// always the same body whatever the underlying cause; store failures never
// leak internals.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return errJSON(c, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
	case errors.Is(err, service.ErrNotFound):
		return errJSON(c, http.StatusNotFound, "NotFound", err.Error())
	case errors.Is(err, service.ErrConflict):
		return errJSON(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, service.ErrInvalidState):
		return errJSON(c, http.StatusBadRequest, "InvalidState", err.Error())
	default:
		return errJSON(c, http.StatusInternalServerError, "Internal", "internal server error")
	}
}

func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	v := c.Get("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil, errors.New("unauthorized")
	}

	userID, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	return userID, nil
}
