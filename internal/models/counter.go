package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteTotalKey là key của counter đếm lượt truy cập toàn site.
const SiteTotalKey = "siteTotal"

// Counter là document key -> count, tăng bằng $inc với upsert.
type Counter struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Key       string             `bson:"key" json:"key"`
	Count     int64              `bson:"count" json:"count"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
