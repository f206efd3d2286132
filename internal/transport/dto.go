package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gaana-Shree-S/ecommerce/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  uint      `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity uint `json:"quantity"`
}

type ProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Rating        float64          `json:"rating"`
	InStock       *bool            `json:"inStock"`
}

// UserView is the public account shape: never the password hash, never the
// token set.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func NewUserView(u *models.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}

type RegisterResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

type LoginResponse struct {
	AccessToken string   `json:"accessToken"`
	User        UserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	User UserView `json:"user"`
}

type ProductsResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

type ProductResponse struct {
	Success bool            `json:"success"`
	Product *models.Product `json:"product"`
}

type SearchResponse struct {
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}

type CartResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Items   []models.CartItem `json:"items"`
}

type CartItemResponse struct {
	Success bool             `json:"success"`
	Item    *models.CartItem `json:"item"`
}

type OrdersResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Orders  []models.Order `json:"orders"`
}

type OrderResponse struct {
	Success bool          `json:"success"`
	Order   *models.Order `json:"order"`
}

// ErrorBody carries a stable machine-checkable kind next to the human
// message.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
