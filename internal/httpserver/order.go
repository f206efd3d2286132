package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Gaana-Shree-S/ecommerce/internal/service"
	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Place(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	order, err := h.Svc.Place(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, transport.OrderResponse{Success: true, Order: order})
}

func (h *OrderHTTP) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	orders, err := h.Svc.ListMine(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.OrdersResponse{
		Success: true,
		Count:   len(orders),
		Orders:  orders,
	})
}

func (h *OrderHTTP) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := userIDFromContext(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "Unauthorized", "unauthorized")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NotFound", "order not found")
	}

	order, err := h.Svc.GetByID(ctx, userID, orderID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.OrderResponse{Success: true, Order: order})
}
