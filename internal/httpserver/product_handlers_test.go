package httpserver

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
)

func TestListProductsEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.createProduct("Wireless Bluetooth Headphones", "Electronics", "6499.99")
	env.createProduct("Smart Fitness Watch", "Electronics", "16499.99")
	env.createProduct("Yoga Mat Premium", "Sports & Fitness", "3749.99")

	rec := env.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAs[transport.ProductsResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Products, 3)

	rec = env.do(http.MethodGet, "/api/products?category=Electronics", nil)
	resp = decodeAs[transport.ProductsResponse](t, rec)
	assert.Equal(t, 2, resp.Count)

	rec = env.do(http.MethodGet, "/api/products?search=watch", nil)
	resp = decodeAs[transport.ProductsResponse](t, rec)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Smart Fitness Watch", resp.Products[0].Name)
}

func TestGetProductEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	product := env.createProduct("Organic Coffee Beans", "Food & Beverage", "1549.99")

	rec := env.do(http.MethodGet, "/api/products/"+product.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAs[transport.ProductResponse](t, rec)
	require.NotNil(t, resp.Product)
	assert.Equal(t, product.ID, resp.Product.ID)

	// Malformed and unknown ids are the same 404.
	rec = env.do(http.MethodGet, "/api/products/not-a-uuid", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodGet, "/api/products/00000000-0000-0000-0000-000000000099", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpointUnavailableWithoutBackend(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/products/search", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/products/search?q=watch", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminProductCRUD(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.createAdmin("admin@swadeshi.com", "admin123")
	access, _ := env.login("admin@swadeshi.com", "admin123")

	body := transport.ProductRequest{
		Name:     "Leather Laptop Bag",
		Category: "Accessories",
		Image:    "/bag.png",
		Price:    decimal.RequireFromString("7299.99"),
		Rating:   4.3,
	}
	rec := env.do(http.MethodPost, "/api/admin/products", body, withBearer(access))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeAs[transport.ProductResponse](t, rec)
	require.NotNil(t, created.Product)
	assert.True(t, created.Product.InStock, "inStock defaults to true")

	body.Name = "Leather Laptop Bag XL"
	rec = env.do(http.MethodPut, "/api/admin/products/"+created.Product.ID.String(), body, withBearer(access))
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeAs[transport.ProductResponse](t, rec)
	assert.Equal(t, "Leather Laptop Bag XL", updated.Product.Name)

	body.Rating = 9
	rec = env.do(http.MethodPut, "/api/admin/products/"+created.Product.ID.String(), body, withBearer(access))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodDelete, "/api/admin/products/"+created.Product.ID.String(), nil, withBearer(access))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodGet, "/api/products/"+created.Product.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register("Ann", "ann@x.com", "pw123456")
	access, _ := env.login("ann@x.com", "pw123456")

	body := transport.ProductRequest{
		Name: "X", Category: "Y", Image: "/x.png",
		Price: decimal.RequireFromString("1"),
	}

	rec := env.do(http.MethodPost, "/api/admin/products", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	errResp := decodeAs[transport.ErrorResponse](t, rec)
	assert.Equal(t, "Unauthorized", errResp.Error.Kind)

	rec = env.do(http.MethodPost, "/api/admin/products", body, withBearer(access))
	require.Equal(t, http.StatusForbidden, rec.Code)
	errResp = decodeAs[transport.ErrorResponse](t, rec)
	assert.Equal(t, "Forbidden", errResp.Error.Kind)
	assert.Equal(t, "admin access required", errResp.Error.Message)
}
