package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Gaana-Shree-S/ecommerce/internal/logging"
	"github.com/Gaana-Shree-S/ecommerce/internal/service"
	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	items, err := h.Svc.Get(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.CartResponse{
		Success: true,
		Count:   len(items),
		Items:   items,
	})
}

func (h *CartHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return errJSON(c, http.StatusBadRequest, "ValidationError", "invalid body")
	}

	item, err := h.Svc.Add(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, transport.CartItemResponse{Success: true, Item: item})
}

func (h *CartHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NotFound", "cart item not found")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "ValidationError", "invalid body")
	}

	item, err := h.Svc.Update(ctx, userID, itemID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.CartItemResponse{Success: true, Item: item})
}

func (h *CartHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NotFound", "cart item not found")
	}

	if err := h.Svc.Remove(ctx, userID, itemID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item removed"})
}

func (h *CartHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	if err := h.Svc.Clear(ctx, userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart cleared"})
}
