package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Visitors    int64              `bson:"visitors" json:"visitors"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CompanyPatch chứa các field được phép cập nhật. Field nil sẽ được giữ nguyên.
type CompanyPatch struct {
	Name        *string `bson:"name,omitempty"`
	Description *string `bson:"description,omitempty"`
	Logo        *string `bson:"logo,omitempty"`
	Website     *string `bson:"website,omitempty"`
}
