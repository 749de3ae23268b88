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

type BrandStore struct {
	db *mongo.Database
}

// brandPipeline populate companyId thành sub-document "company".
// preserveNullAndEmptyArrays giữ lại brand có tham chiếu dangling:
// company khi đó vắng mặt và decode thành nil.
func brandPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         collCompanies,
			"localField":   "companyId",
			"foreignField": "_id",
			"as":           "company",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$company",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (s *BrandStore) aggregate(ctx context.Context, match bson.M) ([]models.BrandDetail, error) {
	cursor, err := s.db.Collection(collBrands).Aggregate(ctx, brandPipeline(match))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var brands []models.BrandDetail
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []models.BrandDetail{}
	}
	return brands, nil
}

func (s *BrandStore) List(ctx context.Context, companyID *primitive.ObjectID) ([]models.BrandDetail, error) {
	match := bson.M{}
	if companyID != nil {
		match["companyId"] = *companyID
	}
	return s.aggregate(ctx, match)
}

func (s *BrandStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BrandDetail, error) {
	brands, err := s.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, store.ErrNotFound
	}
	return &brands[0], nil
}

func (s *BrandStore) Create(ctx context.Context, brand *models.Brand) (*models.BrandDetail, error) {
	now := time.Now()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	result, err := s.db.Collection(collBrands).InsertOne(ctx, brand)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		brand.ID = oid
	}
	return s.GetByID(ctx, brand.ID)
}

func (s *BrandStore) Update(ctx context.Context, id primitive.ObjectID, patch models.BrandPatch) (*models.BrandDetail, error) {
	set, err := patchToSet(patch)
	if err != nil {
		return nil, err
	}

	result, err := s.db.Collection(collBrands).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete xóa brand và toàn bộ product của nó (product trước, brand sau).
func (s *BrandStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Brand, int64, error) {
	var brand models.Brand
	err := s.db.Collection(collBrands).FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, 0, store.ErrNotFound
		}
		return nil, 0, err
	}

	var deletedProducts int64
	cascade := func(ctx context.Context) error {
		productResult, err := s.db.Collection(collProducts).DeleteMany(ctx, bson.M{"brandId": id})
		if err != nil {
			return err
		}
		deletedProducts = productResult.DeletedCount

		_, err = s.db.Collection(collBrands).DeleteOne(ctx, bson.M{"_id": id})
		return err
	}

	session, err := s.db.Client().StartSession()
	if err == nil {
		defer session.EndSession(ctx)
		_, txErr := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return nil, cascade(sc)
		})
		if txErr == nil {
			return &brand, deletedProducts, nil
		}
		if !transactionsUnsupported(txErr) {
			return nil, 0, txErr
		}
	}

	if err := cascade(ctx); err != nil {
		return nil, 0, err
	}
	return &brand, deletedProducts, nil
}
