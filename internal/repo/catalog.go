package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Gaana-Shree-S/ecommerce/internal/models"
)

// ListProducts filters by case-insensitive substring on name and exact
// category. An empty category or "All" matches everything. Ordering is by
// creation time so the storefront sees a stable list.
func (r *GormRepo) ListProducts(ctx context.Context, search, category string) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})

	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}

	var products []models.Product
	if err := q.Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
