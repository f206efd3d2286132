package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Gaana-Shree-S/ecommerce/internal/hash"
	authmw "github.com/Gaana-Shree-S/ecommerce/internal/middleware/auth"
	"github.com/Gaana-Shree-S/ecommerce/internal/models"
	"github.com/Gaana-Shree-S/ecommerce/internal/repo"
	"github.com/Gaana-Shree-S/ecommerce/internal/service"
	"github.com/Gaana-Shree-S/ecommerce/internal/tokens"
	"github.com/Gaana-Shree-S/ecommerce/internal/transport"
)

type testEnv struct {
	t    *testing.T
	e    *echo.Echo
	repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repo.AutoMigrate(db))
	r := repo.New(db)

	accessSecret := []byte("test-jwt-secret")
	refreshSecret := []byte("test-refresh-secret")

	authSvc := &service.AuthService{Repo: r, AccessSecret: accessSecret, RefreshSecret: refreshSecret}
	catalogSvc := &service.CatalogService{Repo: r}
	cartSvc := &service.CartService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:    &AuthHTTP{Svc: authSvc},
		ProductHandler: &ProductHTTP{Svc: catalogSvc},
		CartHandler:    &CartHTTP{Svc: cartSvc},
		OrderHandler:   &OrderHTTP{Svc: orderSvc},
		Session:        authmw.New(accessSecret),
	})

	return &testEnv{t: t, e: e, repo: r}
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func withCookie(cookie *http.Cookie) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(cookie)
	}
}

func (env *testEnv) do(method, path string, body any, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	env.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeAs[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == tokens.RefreshCookieName {
			return cookie
		}
	}
	t.Fatal("no refresh cookie in response")
	return nil
}

func (env *testEnv) register(name, email, password string) {
	env.t.Helper()
	rec := env.do(http.MethodPost, "/api/register", transport.RegisterRequest{
		Name: name, Email: email, Password: password,
	})
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (env *testEnv) login(email, password string) (string, *http.Cookie) {
	env.t.Helper()
	rec := env.do(http.MethodPost, "/api/login", transport.LoginRequest{
		Email: email, Password: password,
	})
	require.Equal(env.t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeAs[transport.LoginResponse](env.t, rec)
	return resp.AccessToken, refreshCookie(env.t, rec)
}

// createAdmin writes the admin row directly; there is no registration path
// that grants the flag.
func (env *testEnv) createAdmin(email, password string) {
	env.t.Helper()
	pwHash, err := hash.HashPassword(password)
	require.NoError(env.t, err)
	require.NoError(env.t, env.repo.CreateUser(context.Background(), &models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: pwHash,
		IsAdmin:      true,
	}))
}

func (env *testEnv) createProduct(name, category, price string) *models.Product {
	env.t.Helper()
	product := models.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Image:    "/" + name + ".png",
		Rating:   4.0,
		InStock:  true,
	}
	require.NoError(env.t, env.repo.CreateProduct(context.Background(), &product))
	return &product
}
