package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaana-Shree-S/ecommerce/internal/models"
	"github.com/Gaana-Shree-S/ecommerce/internal/mykafka"
)

func TestListFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	createProduct(t, r, "Wireless Bluetooth Headphones", "Electronics", "6499.99")
	createProduct(t, r, "Smart Fitness Watch", "Electronics", "16499.99")
	createProduct(t, r, "Yoga Mat Premium", "Sports & Fitness", "3749.99")

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "All" is the storefront's catch-all category, not a real one.
	all, err = svc.List(ctx, "", "All")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	electronics, err := svc.List(ctx, "", "Electronics")
	require.NoError(t, err)
	assert.Len(t, electronics, 2)

	watches, err := svc.List(ctx, "WATCH", "")
	require.NoError(t, err)
	require.Len(t, watches, 1)
	assert.Equal(t, "Smart Fitness Watch", watches[0].Name)

	both, err := svc.List(ctx, "wireless", "Electronics")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Wireless Bluetooth Headphones", both[0].Name)

	none, err := svc.List(ctx, "wireless", "Sports & Fitness")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &CatalogService{Repo: newTestRepo(t)}

	err := svc.Create(ctx, &models.Product{Category: "Electronics", Image: "/x.png"})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.Create(ctx, &models.Product{
		Name:     "Negative",
		Category: "Electronics",
		Image:    "/x.png",
		Price:    decimal.RequireFromString("-1"),
	})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.Create(ctx, &models.Product{
		Name:     "Overrated",
		Category: "Electronics",
		Image:    "/x.png",
		Price:    decimal.RequireFromString("10"),
		Rating:   5.5,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newTestRepo(t)
	rec := &eventRecorder{}
	svc := &CatalogService{Repo: r, Producer: rec}

	product := createProduct(t, r, "Organic Coffee Beans", "Food & Beverage", "1549.99")

	updated, err := svc.Update(ctx, product.ID, &models.Product{
		Name:     "Organic Coffee Beans 1kg",
		Category: "Food & Beverage",
		Image:    product.Image,
		Price:    decimal.RequireFromString("1699.99"),
		Rating:   4.5,
		InStock:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Organic Coffee Beans 1kg", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1699.99")))

	_, err = svc.Update(ctx, uuid.New(), updated)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, product.ID))
	_, err = svc.GetByID(ctx, product.ID)
	require.ErrorIs(t, err, ErrNotFound)

	topics := rec.Topics()
	require.Len(t, topics, 2)
	assert.Equal(t, mykafka.TopicProductEvents, topics[0])
	assert.Equal(t, mykafka.TopicProductEvents, topics[1])
}
