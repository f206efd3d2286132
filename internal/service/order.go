package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/Gaana-Shree-S/ecommerce/internal/logging"
	"github.com/Gaana-Shree-S/ecommerce/internal/models"
	"github.com/Gaana-Shree-S/ecommerce/internal/mykafka"
	"github.com/Gaana-Shree-S/ecommerce/internal/repo"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer mykafka.Publisher

	group singleflight.Group
}

// Place converts the account's cart into a Pending order. Conversion is
// single-flighted per account id: concurrent calls collapse into one
// conversion, the cart empties exactly once and one order is created.
func (s *OrderService) Place(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place")

	v, err, _ := s.group.Do(userID.String(), func() (any, error) {
		return s.Repo.ConvertCartToOrder(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, repo.ErrEmptyCart) {
			return nil, fmt.Errorf("%w: cart is empty", ErrInvalidState)
		}
		l.Error("place_order_error", "error", err)
		return nil, err
	}

	order := v.(*models.Order)
	s.publish(ctx, order.ID.String(), map[string]any{
		"type":       "order_placed",
		"orderId":    order.ID,
		"userId":     order.UserID,
		"totalPrice": order.TotalPrice,
	})

	l.Info("order placed", "order_id", order.ID, "total", order.TotalPrice)
	return order, nil
}

func (s *OrderService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.Repo.OrdersByUser(ctx, userID)
}

func (s *OrderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.OrderByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
