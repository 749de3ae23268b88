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

type ProductStore struct {
	db *mongo.Database
}

// productPipeline populate brandId thành {_id, name, company} với company
// của brand được populate lồng bên trong (tương đương populate hai cấp).
func productPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": collBrands,
			"let":  bson.M{"bid": "$brandId"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$bid"}}}},
				bson.M{"$lookup": bson.M{
					"from":         collCompanies,
					"localField":   "companyId",
					"foreignField": "_id",
					"as":           "company",
				}},
				bson.M{"$unwind": bson.M{
					"path":                       "$company",
					"preserveNullAndEmptyArrays": true,
				}},
			},
			"as": "brand",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$brand",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (s *ProductStore) aggregate(ctx context.Context, match bson.M) ([]models.ProductDetail, error) {
	cursor, err := s.db.Collection(collProducts).Aggregate(ctx, productPipeline(match))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.ProductDetail
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.ProductDetail{}
	}
	return products, nil
}

func (s *ProductStore) List(ctx context.Context, brandID *primitive.ObjectID) ([]models.ProductDetail, error) {
	match := bson.M{}
	if brandID != nil {
		match["brandId"] = *brandID
	}
	return s.aggregate(ctx, match)
}

func (s *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, error) {
	products, err := s.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, store.ErrNotFound
	}
	return &products[0], nil
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) (*models.ProductDetail, error) {
	now := time.Now()
	if product.Images == nil {
		product.Images = []string{}
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := s.db.Collection(collProducts).InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return s.GetByID(ctx, product.ID)
}

func (s *ProductStore) Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.ProductDetail, error) {
	set, err := patchToSet(patch)
	if err != nil {
		return nil, err
	}

	result, err := s.db.Collection(collProducts).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete chỉ xóa chính product (leaf entity, không có cascade).
func (s *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection(collProducts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
