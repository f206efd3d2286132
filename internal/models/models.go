package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	Name         string    `gorm:"not null"                  json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string    `gorm:"not null"                  json:"-"`
	IsAdmin      bool      `gorm:"default:false"             json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// RefreshToken rows form a user's outstanding refresh-token set. Only the
// SHA-256 digest of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	TokenHash string    `gorm:"uniqueIndex;not null"  json:"-"`
	ExpiresAt time.Time `gorm:"not null"              json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *RefreshToken) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string           `gorm:"not null"             json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `gorm:"type:numeric;not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:numeric"         json:"originalPrice,omitempty"`
	Category      string           `gorm:"index;not null"       json:"category"`
	Image         string           `gorm:"not null"             json:"image"`
	Rating        float64          `gorm:"default:0"            json:"rating"`
	InStock       bool             `gorm:"default:true"         json:"inStock"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"                          json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product" json:"userId"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product" json:"productId"`
	Quantity       uint      `gorm:"not null;check:quantity > 0"                   json:"quantity"`
	DeliveryOption string    `gorm:"not null;default:standard"                     json:"deliveryOption"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (i *CartItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// CanTransition reports whether an order status change is allowed. The chain
// is forward-only: Pending -> Shipped -> Delivered.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusShipped
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	default:
		return false
	}
}

type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"userId"`
	TotalPrice decimal.Decimal `gorm:"type:numeric;not null"    json:"totalPrice"`
	Status     string          `gorm:"not null;default:Pending" json:"status"`
	Items      []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt  time.Time       `json:"orderDate"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is an immutable snapshot of a cart line at conversion time.
// UnitPrice is the product price when the order was placed, not a live ref.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"     json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"orderId"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"       json:"productId"`
	Quantity  uint            `gorm:"not null"                 json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"    json:"unitPrice"`
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
