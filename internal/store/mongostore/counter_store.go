package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sale-company-api-server/internal/models"
)

type CounterStore struct {
	db *mongo.Database
}

func (s *CounterStore) Get(ctx context.Context, key string) (int64, error) {
	var counter models.Counter
	err := s.db.Collection(collCounters).FindOne(ctx, bson.M{"key": key}).Decode(&counter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Chưa có ai ghé thăm: counter chưa tồn tại, trả về 0.
			return 0, nil
		}
		return 0, err
	}
	return counter.Count, nil
}

// Increment là điểm duy nhất trong hệ thống dựa vào atomicity của database:
// $inc kèm upsert, nhiều request đồng thời không mất lượt đếm nào.
func (s *CounterStore) Increment(ctx context.Context, key string, step int64) (int64, error) {
	now := time.Now()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := s.db.Collection(collCounters).
		FindOneAndUpdate(ctx, bson.M{"key": key},
			bson.M{
				"$inc":         bson.M{"count": step},
				"$set":         bson.M{"updatedAt": now},
				"$setOnInsert": bson.M{"createdAt": now},
			}, opts).
		Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Count, nil
}
