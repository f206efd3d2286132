package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gaana-Shree-S/ecommerce/internal/logging"
	"github.com/Gaana-Shree-S/ecommerce/internal/service"
	"github.com/Gaana-Shree-S/ecommerce/internal/tokens"
	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return errJSON(c, http.StatusBadRequest, "ValidationError", "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, transport.RegisterResponse{
		Message: "User created",
		User:    transport.NewUserView(user),
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return errJSON(c, http.StatusBadRequest, "ValidationError", "invalid body")
	}

	session, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(tokens.CreateCookie(tokens.RefreshCookieName, session.RefreshToken, "/", session.RefreshExp))

	return c.JSON(http.StatusOK, transport.LoginResponse{
		AccessToken: session.AccessToken,
		User:        transport.NewUserView(&session.User),
	})
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var raw string
	if cookie, err := c.Cookie(tokens.RefreshCookieName); err == nil {
		raw = cookie.Value
	}

	session, err := h.Svc.Refresh(ctx, raw)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(tokens.CreateCookie(tokens.RefreshCookieName, session.RefreshToken, "/", session.RefreshExp))

	return c.JSON(http.StatusOK, transport.RefreshResponse{AccessToken: session.AccessToken})
}

// Logout always succeeds: the token removal is best-effort and the cookie is
// cleared regardless.
func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var raw string
	if cookie, err := c.Cookie(tokens.RefreshCookieName); err == nil {
		raw = cookie.Value
	}
	h.Svc.Logout(ctx, raw)

	c.SetCookie(tokens.DeleteCookie(tokens.RefreshCookieName, "/"))

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Logged out"})
}

func (h *AuthHTTP) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	user, err := h.Svc.Profile(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.ProfileResponse{User: transport.NewUserView(user)})
}
