package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Gaana-Shree-S/ecommerce/internal/logging"
	"github.com/Gaana-Shree-S/ecommerce/internal/models"
	"github.com/Gaana-Shree-S/ecommerce/internal/service"
	"github.com/Gaana-Shree-S/ecommerce/internal/service/search"
	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
	"github.com/Gaana-Shree-S/ecommerce/internal/util"
)

type ProductHTTP struct {
	Svc   *service.CatalogService
	ES    *elasticsearch.Client
	Index string
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.Svc.List(ctx, c.QueryParam("search"), c.QueryParam("category"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.ProductsResponse{
		Success:  true,
		Count:    len(products),
		Products: products,
	})
}

func (h *ProductHTTP) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	// A malformed id is indistinguishable from an unknown one.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NotFound", "product not found")
	}

	product, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.ProductResponse{Success: true, Product: product})
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		return errJSON(c, http.StatusBadRequest, "ValidationError", "q required")
	}
	if h.ES == nil {
		return errJSON(c, http.StatusServiceUnavailable, "Internal", "search unavailable")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return errJSON(c, http.StatusInternalServerError, "Internal", "internal server error")
	}

	return c.JSON(http.StatusOK, transport.SearchResponse{Total: total, Products: products})
}

func productFromRequest(req *transport.ProductRequest) models.Product {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	return models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Image:         req.Image,
		Rating:        req.Rating,
		InStock:       inStock,
	}
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "ValidationError", "invalid body")
	}

	product := productFromRequest(&req)
	if err := h.Svc.Create(ctx, &product); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, transport.ProductResponse{Success: true, Product: &product})
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NotFound", "product not found")
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "ValidationError", "invalid body")
	}

	update := productFromRequest(&req)
	product, err := h.Svc.Update(ctx, id, &update)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.ProductResponse{Success: true, Product: product})
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NotFound", "product not found")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
