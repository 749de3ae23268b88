package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyRef là dạng rút gọn của Company khi được populate vào Brand/Product.
type CompanyRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// BrandRef là dạng rút gọn của Brand khi được populate vào Product,
// kèm theo company của brand đó (populate lồng nhau).
type BrandRef struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Company *CompanyRef        `bson:"company,omitempty" json:"companyId"`
}
