package memstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type BrandStore struct {
	d *data
}

func (s *BrandStore) detail(brand models.Brand) models.BrandDetail {
	return models.BrandDetail{Brand: brand, Company: s.d.companyRef(brand.CompanyID)}
}

func (s *BrandStore) List(ctx context.Context, companyID *primitive.ObjectID) ([]models.BrandDetail, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	brands := make([]models.BrandDetail, 0, len(s.d.brandOrder))
	for i := len(s.d.brandOrder) - 1; i >= 0; i-- {
		brand := s.d.brands[s.d.brandOrder[i]]
		if companyID != nil && brand.CompanyID != *companyID {
			continue
		}
		brands = append(brands, s.detail(brand))
	}
	return brands, nil
}

func (s *BrandStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BrandDetail, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	brand, ok := s.d.brands[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	detail := s.detail(brand)
	return &detail, nil
}

func (s *BrandStore) Create(ctx context.Context, brand *models.Brand) (*models.BrandDetail, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now()
	brand.ID = primitive.NewObjectID()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	s.d.brands[brand.ID] = *brand
	s.d.brandOrder = append(s.d.brandOrder, brand.ID)

	detail := s.detail(*brand)
	return &detail, nil
}

func (s *BrandStore) Update(ctx context.Context, id primitive.ObjectID, patch models.BrandPatch) (*models.BrandDetail, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	brand, ok := s.d.brands[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		brand.Name = *patch.Name
	}
	if patch.Description != nil {
		brand.Description = *patch.Description
	}
	if patch.Logo != nil {
		brand.Logo = *patch.Logo
	}
	if patch.CompanyID != nil {
		brand.CompanyID = *patch.CompanyID
	}
	brand.UpdatedAt = time.Now()

	s.d.brands[id] = brand
	detail := s.detail(brand)
	return &detail, nil
}

func (s *BrandStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Brand, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	brand, ok := s.d.brands[id]
	if !ok {
		return nil, 0, store.ErrNotFound
	}

	var deletedProducts int64
	for productID, product := range s.d.products {
		if product.BrandID == id {
			delete(s.d.products, productID)
			s.d.productOrder = removeID(s.d.productOrder, productID)
			deletedProducts++
		}
	}

	delete(s.d.brands, id)
	s.d.brandOrder = removeID(s.d.brandOrder, id)
	return &brand, deletedProducts, nil
}
