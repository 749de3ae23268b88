package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type JobOpeningStore struct {
	db *mongo.Database
}

func (s *JobOpeningStore) List(ctx context.Context, status string, limit int64) ([]models.JobOpening, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "postedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collJobOpenings).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.JobOpening
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobOpening{}
	}
	return jobs, nil
}

func (s *JobOpeningStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobOpening, error) {
	var job models.JobOpening
	err := s.db.Collection(collJobOpenings).FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobOpeningStore) Create(ctx context.Context, job *models.JobOpening) error {
	now := time.Now()
	if job.PostedAt.IsZero() {
		job.PostedAt = now
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	job.CreatedAt = now
	job.UpdatedAt = now

	result, err := s.db.Collection(collJobOpenings).InsertOne(ctx, job)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

func (s *JobOpeningStore) Update(ctx context.Context, id primitive.ObjectID, patch models.JobOpeningPatch) (*models.JobOpening, error) {
	set, err := patchToSet(patch)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var job models.JobOpening
	err = s.db.Collection(collJobOpenings).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobOpeningStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection(collJobOpenings).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
