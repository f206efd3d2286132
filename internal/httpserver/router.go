package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	authmw "github.com/Gaana-Shree-S/ecommerce/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	Session        *authmw.SessionMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	// Credential endpoints are rate limited; the rest of the surface is not.
	authLimiter := echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(20)))

	api.POST("/register", d.AuthHandler.Register, authLimiter)
	api.POST("/login", d.AuthHandler.Login, authLimiter)
	api.POST("/refresh-token", d.AuthHandler.Refresh)
	api.POST("/logout", d.AuthHandler.Logout)
	api.GET("/profile", d.AuthHandler.Profile, d.Session.RequireAuth)

	api.GET("/products", d.ProductHandler.List)
	api.GET("/products/search", d.ProductHandler.Search)
	api.GET("/products/:id", d.ProductHandler.GetByID)

	admin := api.Group("/admin", d.Session.RequireAdmin)
	admin.POST("/products", d.ProductHandler.Create)
	admin.PUT("/products/:id", d.ProductHandler.Update)
	admin.DELETE("/products/:id", d.ProductHandler.Delete)

	cart := api.Group("/cart", d.Session.RequireAuth)
	cart.GET("", d.CartHandler.Get)
	cart.POST("", d.CartHandler.Add)
	cart.PUT("/:itemId", d.CartHandler.Update)
	cart.DELETE("/:itemId", d.CartHandler.Remove)
	cart.DELETE("", d.CartHandler.Clear)

	order := api.Group("/order", d.Session.RequireAuth)
	order.POST("", d.OrderHandler.Place)
	order.GET("/my", d.OrderHandler.ListMine)
	order.GET("/:id", d.OrderHandler.GetByID)
}
