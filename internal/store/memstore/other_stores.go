package memstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type JobOpeningStore struct {
	d *data
}

func (s *JobOpeningStore) List(ctx context.Context, status string, limit int64) ([]models.JobOpening, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	jobs := make([]models.JobOpening, 0, len(s.d.jobOrder))
	for i := len(s.d.jobOrder) - 1; i >= 0; i-- {
		job := s.d.jobs[s.d.jobOrder[i]]
		if status != "" && job.Status != status {
			continue
		}
		jobs = append(jobs, job)
		if limit > 0 && int64(len(jobs)) == limit {
			break
		}
	}
	return jobs, nil
}

func (s *JobOpeningStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobOpening, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	job, ok := s.d.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &job, nil
}

func (s *JobOpeningStore) Create(ctx context.Context, job *models.JobOpening) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now()
	job.ID = primitive.NewObjectID()
	if job.PostedAt.IsZero() {
		job.PostedAt = now
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	job.CreatedAt = now
	job.UpdatedAt = now

	s.d.jobs[job.ID] = *job
	s.d.jobOrder = append(s.d.jobOrder, job.ID)
	return nil
}

func (s *JobOpeningStore) Update(ctx context.Context, id primitive.ObjectID, patch models.JobOpeningPatch) (*models.JobOpening, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	job, ok := s.d.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Requirements != nil {
		job.Requirements = *patch.Requirements
	}
	if patch.SalaryText != nil {
		job.SalaryText = *patch.SalaryText
	}
	if patch.QuantityText != nil {
		job.QuantityText = *patch.QuantityText
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Experience != nil {
		job.Experience = *patch.Experience
	}
	if patch.Deadline != nil {
		job.Deadline = *patch.Deadline
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	job.UpdatedAt = time.Now()

	s.d.jobs[id] = job
	return &job, nil
}

func (s *JobOpeningStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.jobs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.jobs, id)
	s.d.jobOrder = removeID(s.d.jobOrder, id)
	return nil
}

type AdminStore struct {
	d *data
}

func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	for _, admin := range s.d.admins {
		if admin.Email == email {
			found := admin
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *AdminStore) Create(ctx context.Context, admin *models.Admin) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	for _, existing := range s.d.admins {
		if existing.Email == admin.Email {
			return store.ErrDuplicateEmail
		}
	}

	now := time.Now()
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	s.d.admins[admin.ID] = *admin
	return nil
}

func (s *AdminStore) Count(ctx context.Context) (int64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return int64(len(s.d.admins)), nil
}

type ProfileStore struct {
	d *data
}

func (s *ProfileStore) Get(ctx context.Context) (*models.CompanyProfile, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	if s.d.profile == nil {
		return nil, nil
	}
	profile := *s.d.profile
	return &profile, nil
}

func (s *ProfileStore) Upsert(ctx context.Context, profile *models.CompanyProfile, expectedVersion *int64) (*models.CompanyProfile, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now()
	saved := *profile
	saved.Slug = models.ProfileSlug
	saved.UpdatedAt = now

	if s.d.profile == nil {
		if expectedVersion != nil {
			return nil, store.ErrVersionConflict
		}
		saved.ID = primitive.NewObjectID()
		saved.Version = 1
		saved.CreatedAt = now
	} else {
		if expectedVersion != nil && *expectedVersion != s.d.profile.Version {
			return nil, store.ErrVersionConflict
		}
		saved.ID = s.d.profile.ID
		saved.Version = s.d.profile.Version + 1
		saved.CreatedAt = s.d.profile.CreatedAt
	}

	s.d.profile = &saved
	result := saved
	return &result, nil
}

type CounterStore struct {
	d *data
}

func (s *CounterStore) Get(ctx context.Context, key string) (int64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return s.d.counters[key], nil
}

func (s *CounterStore) Increment(ctx context.Context, key string, step int64) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	s.d.counters[key] += step
	return s.d.counters[key], nil
}
