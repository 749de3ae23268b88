package memstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type CompanyStore struct {
	d *data
}

func (s *CompanyStore) List(ctx context.Context) ([]models.Company, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	companies := make([]models.Company, 0, len(s.d.companyOrder))
	for i := len(s.d.companyOrder) - 1; i >= 0; i-- {
		companies = append(companies, s.d.companies[s.d.companyOrder[i]])
	}
	return companies, nil
}

func (s *CompanyStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	company, ok := s.d.companies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &company, nil
}

func (s *CompanyStore) Create(ctx context.Context, company *models.Company) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now()
	company.ID = primitive.NewObjectID()
	company.Visitors = 0
	company.CreatedAt = now
	company.UpdatedAt = now

	s.d.companies[company.ID] = *company
	s.d.companyOrder = append(s.d.companyOrder, company.ID)
	return nil
}

func (s *CompanyStore) Update(ctx context.Context, id primitive.ObjectID, patch models.CompanyPatch) (*models.Company, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	company, ok := s.d.companies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		company.Name = *patch.Name
	}
	if patch.Description != nil {
		company.Description = *patch.Description
	}
	if patch.Logo != nil {
		company.Logo = *patch.Logo
	}
	if patch.Website != nil {
		company.Website = *patch.Website
	}
	company.UpdatedAt = time.Now()

	s.d.companies[id] = company
	return &company, nil
}

func (s *CompanyStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Company, *store.CascadeResult, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	company, ok := s.d.companies[id]
	if !ok {
		return nil, nil, store.ErrNotFound
	}

	result := &store.CascadeResult{}
	for brandID, brand := range s.d.brands {
		if brand.CompanyID != id {
			continue
		}
		for productID, product := range s.d.products {
			if product.BrandID == brandID {
				delete(s.d.products, productID)
				s.d.productOrder = removeID(s.d.productOrder, productID)
				result.Products++
			}
		}
		delete(s.d.brands, brandID)
		s.d.brandOrder = removeID(s.d.brandOrder, brandID)
		result.Brands++
	}

	delete(s.d.companies, id)
	s.d.companyOrder = removeID(s.d.companyOrder, id)
	return &company, result, nil
}

func (s *CompanyStore) RecordVisit(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	company, ok := s.d.companies[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	company.Visitors++
	s.d.companies[id] = company
	return company.Visitors, nil
}
