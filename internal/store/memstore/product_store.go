package memstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type ProductStore struct {
	d *data
}

func (s *ProductStore) detail(product models.Product) models.ProductDetail {
	return models.ProductDetail{Product: product, Brand: s.d.brandRef(product.BrandID)}
}

func (s *ProductStore) List(ctx context.Context, brandID *primitive.ObjectID) ([]models.ProductDetail, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	products := make([]models.ProductDetail, 0, len(s.d.productOrder))
	for i := len(s.d.productOrder) - 1; i >= 0; i-- {
		product := s.d.products[s.d.productOrder[i]]
		if brandID != nil && product.BrandID != *brandID {
			continue
		}
		products = append(products, s.detail(product))
	}
	return products, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	product, ok := s.d.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	detail := s.detail(product)
	return &detail, nil
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) (*models.ProductDetail, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now()
	product.ID = primitive.NewObjectID()
	if product.Images == nil {
		product.Images = []string{}
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	s.d.products[product.ID] = *product
	s.d.productOrder = append(s.d.productOrder, product.ID)

	detail := s.detail(*product)
	return &detail, nil
}

func (s *ProductStore) Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.ProductDetail, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	product, ok := s.d.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
	}
	if patch.Images != nil {
		product.Images = *patch.Images
	}
	if patch.BrandID != nil {
		product.BrandID = *patch.BrandID
	}
	product.UpdatedAt = time.Now()

	s.d.products[id] = product
	detail := s.detail(product)
	return &detail, nil
}

func (s *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.products, id)
	s.d.productOrder = removeID(s.d.productOrder, id)
	return nil
}
