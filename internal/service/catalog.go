package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gaana-Shree-S/ecommerce/internal/es"
	"github.com/Gaana-Shree-S/ecommerce/internal/logging"
	"github.com/Gaana-Shree-S/ecommerce/internal/models"
	"github.com/Gaana-Shree-S/ecommerce/internal/mykafka"
	"github.com/Gaana-Shree-S/ecommerce/internal/repo"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer mykafka.Publisher
	Indexer  es.Indexer
}

func (s *CatalogService) List(ctx context.Context, search, category string) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, search, category)
}

func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func validateProduct(p *models.Product) error {
	if p.Name == "" || p.Category == "" || p.Image == "" {
		return fmt.Errorf("%w: name, category and image required", ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: rating must be in [0,5]", ErrValidation)
	}
	return nil
}

func (s *CatalogService) Create(ctx context.Context, product *models.Product) error {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		l.Error("create_product_error", "error", err)
		return err
	}

	s.index(ctx, product)
	s.publish(ctx, product.ID.String(), map[string]any{
		"type":      "product_created",
		"productId": product.ID,
		"name":      product.Name,
	})
	return nil
}

func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, update *models.Product) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.update")

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = update.Name
	product.Description = update.Description
	product.Price = update.Price
	product.OriginalPrice = update.OriginalPrice
	product.Category = update.Category
	product.Image = update.Image
	product.Rating = update.Rating
	product.InStock = update.InStock

	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		l.Error("update_product_error", "error", err)
		return nil, err
	}

	s.index(ctx, product)
	s.publish(ctx, product.ID.String(), map[string]any{
		"type":      "product_updated",
		"productId": product.ID,
		"name":      product.Name,
	})
	return product, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete")

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		l.Error("delete_product_error", "error", err)
		return err
	}

	if s.Indexer != nil {
		if err := s.Indexer.DeleteProduct(ctx, id); err != nil {
			l.Error("search index delete error", "error", err)
		}
	}
	s.publish(ctx, id.String(), map[string]any{
		"type":      "product_deleted",
		"productId": id,
	})
	return nil
}

func (s *CatalogService) index(ctx context.Context, product *models.Product) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Error("search index error", "error", err)
	}
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
