package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	Images      []string           `bson:"images" json:"images"`
	BrandID     primitive.ObjectID `bson:"brandId" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductDetail là Product sau khi populate brandId thành
// {_id, name, companyId: {_id, name}}.
type ProductDetail struct {
	Product `bson:",inline"`
	Brand   *BrandRef `bson:"brand,omitempty" json:"brandId"`
}

type ProductPatch struct {
	Name        *string             `bson:"name,omitempty"`
	Description *string             `bson:"description,omitempty"`
	Price       *float64            `bson:"price,omitempty"`
	Quantity    *int64              `bson:"quantity,omitempty"`
	Images      *[]string           `bson:"images,omitempty"`
	BrandID     *primitive.ObjectID `bson:"brandId,omitempty"`
}
