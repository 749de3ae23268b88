package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type ProfileStore struct {
	db *mongo.Database
}

func (s *ProfileStore) Get(ctx context.Context) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := s.db.Collection(collProfiles).
		FindOne(ctx, bson.M{"slug": models.ProfileSlug}).
		Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert ghi đè toàn bộ document profile (slug luôn bị ép về "default").
// Khi expectedVersion được cung cấp, ghi chỉ thành công nếu version hiện
// tại khớp; mỗi lần ghi thành công version tăng 1.
func (s *ProfileStore) Upsert(ctx context.Context, profile *models.CompanyProfile, expectedVersion *int64) (*models.CompanyProfile, error) {
	now := time.Now()

	set := bson.M{
		"slug":                models.ProfileSlug,
		"companyInfo":         profile.CompanyInfo,
		"companyIntroduction": profile.CompanyIntroduction,
		"coreValueHeader":     profile.CoreValueHeader,
		"coreValues":          profile.CoreValues,
		"leadershipMessage":   profile.LeadershipMessage,
		"contactCTA":          profile.ContactCTA,
		"logo":                profile.Logo,
		"name":                profile.Name,
		"updatedBy":           profile.UpdatedBy,
		"updatedAt":           now,
	}

	filter := bson.M{"slug": models.ProfileSlug}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if expectedVersion != nil {
		filter["version"] = *expectedVersion
	} else {
		opts.SetUpsert(true)
	}

	update := bson.M{
		"$set":         set,
		"$inc":         bson.M{"version": 1},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	var updated models.CompanyProfile
	err := s.db.Collection(collProfiles).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Có expectedVersion nhưng không match: bản lưu đã đổi version
			// (hoặc chưa từng tồn tại) -> coi là conflict.
			return nil, store.ErrVersionConflict
		}
		return nil, err
	}
	return &updated, nil
}
