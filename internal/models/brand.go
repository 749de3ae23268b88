package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	// CompanyID chỉ là tham chiếu, KHÔNG được kiểm tra tồn tại khi ghi.
	// API trả về dạng populate (BrandDetail), nên field này ẩn khỏi JSON.
	CompanyID primitive.ObjectID `bson:"companyId" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BrandDetail là Brand sau khi populate companyId thành {_id, name}.
// Company là null nếu tham chiếu không còn tồn tại (dangling reference).
type BrandDetail struct {
	Brand   `bson:",inline"`
	Company *CompanyRef `bson:"company,omitempty" json:"companyId"`
}

type BrandPatch struct {
	Name        *string             `bson:"name,omitempty"`
	Description *string             `bson:"description,omitempty"`
	Logo        *string             `bson:"logo,omitempty"`
	CompanyID   *primitive.ObjectID `bson:"companyId,omitempty"`
}
