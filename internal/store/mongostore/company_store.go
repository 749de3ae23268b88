package mongostore

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type CompanyStore struct {
	db *mongo.Database
}

func (s *CompanyStore) List(ctx context.Context) ([]models.Company, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.db.Collection(collCompanies).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

func (s *CompanyStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	err := s.db.Collection(collCompanies).FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (s *CompanyStore) Create(ctx context.Context, company *models.Company) error {
	now := time.Now()
	company.Visitors = 0
	company.CreatedAt = now
	company.UpdatedAt = now

	result, err := s.db.Collection(collCompanies).InsertOne(ctx, company)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		company.ID = oid
	}
	return nil
}

func (s *CompanyStore) Update(ctx context.Context, id primitive.ObjectID, patch models.CompanyPatch) (*models.Company, error) {
	set, err := patchToSet(patch)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var company models.Company
	err = s.db.Collection(collCompanies).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// Delete xóa company và toàn bộ brand/product phụ thuộc. Chạy trong một
// transaction khi server hỗ trợ (replica set); với mongod standalone thì
// rơi về xóa tuần tự best-effort như bản gốc.
func (s *CompanyStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Company, *store.CascadeResult, error) {
	var company models.Company
	err := s.db.Collection(collCompanies).FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, store.ErrNotFound
		}
		return nil, nil, err
	}

	result := &store.CascadeResult{}
	cascade := func(ctx context.Context) error {
		result.Brands = 0
		result.Products = 0

		cursor, err := s.db.Collection(collBrands).Find(ctx, bson.M{"companyId": id},
			options.Find().SetProjection(bson.M{"_id": 1}))
		if err != nil {
			return err
		}
		var brandDocs []struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.All(ctx, &brandDocs); err != nil {
			return err
		}

		if len(brandDocs) > 0 {
			brandIDs := make([]primitive.ObjectID, 0, len(brandDocs))
			for _, doc := range brandDocs {
				brandIDs = append(brandIDs, doc.ID)
			}

			productResult, err := s.db.Collection(collProducts).
				DeleteMany(ctx, bson.M{"brandId": bson.M{"$in": brandIDs}})
			if err != nil {
				return err
			}
			result.Products = productResult.DeletedCount

			brandResult, err := s.db.Collection(collBrands).
				DeleteMany(ctx, bson.M{"_id": bson.M{"$in": brandIDs}})
			if err != nil {
				return err
			}
			result.Brands = brandResult.DeletedCount
		}

		_, err = s.db.Collection(collCompanies).DeleteOne(ctx, bson.M{"_id": id})
		return err
	}

	session, err := s.db.Client().StartSession()
	if err == nil {
		defer session.EndSession(ctx)
		_, txErr := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return nil, cascade(sc)
		})
		if txErr == nil {
			return &company, result, nil
		}
		if !transactionsUnsupported(txErr) {
			return nil, nil, txErr
		}
	}

	if err := cascade(ctx); err != nil {
		return nil, nil, err
	}
	return &company, result, nil
}

func (s *CompanyStore) RecordVisit(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var company models.Company
	err := s.db.Collection(collCompanies).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"visitors": 1}}, opts).
		Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, store.ErrNotFound
		}
		return 0, err
	}
	return company.Visitors, nil
}

// transactionsUnsupported nhận diện lỗi khi mongod không chạy replica set.
func transactionsUnsupported(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers are only allowed") ||
		strings.Contains(msg, "IllegalOperation")
}
