package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Gaana-Shree-S/ecommerce/internal/models"
)

// ConvertCartToOrder snapshots the account's cart into a Pending order and
// empties the cart, all inside one transaction. Totals use the product's
// price at conversion time. Re-running against the emptied cart yields
// ErrEmptyCart, never a duplicate order.
func (r *GormRepo) ConvertCartToOrder(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	var order *models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []models.CartItem
		if err := tx.Where("user_id = ?", userID).
			Order("created_at ASC, id ASC").
			Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}

		var products []models.Product
		if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return err
		}
		priceByID := make(map[uuid.UUID]decimal.Decimal, len(products))
		for _, p := range products {
			priceByID[p.ID] = p.Price
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			price, ok := priceByID[line.ProductID]
			if !ok {
				return fmt.Errorf("cart references missing product %s", line.ProductID)
			}
			lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(lineTotal)
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: price,
			})
		}

		order = &models.Order{
			UserID:     userID,
			TotalPrice: total,
			Status:     models.OrderStatusPending,
			Items:      items,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		res := tx.Where("user_id = ?", userID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		// A concurrent conversion drained the cart mid-flight; roll the
		// whole order back rather than double-charge.
		if res.RowsAffected != int64(len(lines)) {
			return fmt.Errorf("cart changed during conversion")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) OrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) OrderByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
