package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type AdminStore struct {
	db *mongo.Database
}

func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Collection(collAdmins).FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) Create(ctx context.Context, admin *models.Admin) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	result, err := s.db.Collection(collAdmins).InsertOne(ctx, admin)
	if err != nil {
		// Unique index trên email (xem database.EnsureIndexes)
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateEmail
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func (s *AdminStore) Count(ctx context.Context) (int64, error) {
	return s.db.Collection(collAdmins).CountDocuments(ctx, bson.M{})
}
