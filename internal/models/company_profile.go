package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileSlug là slug cố định của document CompanyProfile duy nhất.
const ProfileSlug = "default"

type Partner struct {
	Name     string `bson:"name" json:"name"`
	Products string `bson:"products" json:"products"`
}

type CoreValue struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	// Tên icon lucide dưới dạng chuỗi, ví dụ "Target", "Heart".
	Icon string `bson:"icon" json:"icon"`
}

type CompanyInfo struct {
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

type CompanyIntroduction struct {
	Title          string    `bson:"title,omitempty" json:"title,omitempty"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Network        string    `bson:"network,omitempty" json:"network,omitempty"`
	PartnersTitle  string    `bson:"partnersTitle,omitempty" json:"partnersTitle,omitempty"`
	AdditionalInfo string    `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	Partners       []Partner `bson:"partners" json:"partners"`
}

type CoreValueHeader struct {
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type LeadershipMessage struct {
	Title          string `bson:"title,omitempty" json:"title,omitempty"`
	Message        string `bson:"message,omitempty" json:"message,omitempty"`
	Representative string `bson:"representative,omitempty" json:"representative,omitempty"`
	Role           string `bson:"role,omitempty" json:"role,omitempty"`
}

type ContactCTA struct {
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// CompanyProfile là singleton document (slug "default") chứa toàn bộ nội dung
// trang chủ. Version tăng sau mỗi lần ghi thành công và dùng cho
// optimistic concurrency khi client gửi kèm.
type CompanyProfile struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Slug string             `bson:"slug" json:"slug"`

	CompanyInfo         CompanyInfo         `bson:"companyInfo" json:"companyInfo"`
	CompanyIntroduction CompanyIntroduction `bson:"companyIntroduction" json:"companyIntroduction"`
	CoreValueHeader     CoreValueHeader     `bson:"coreValueHeader" json:"coreValueHeader"`
	CoreValues          []CoreValue         `bson:"coreValues" json:"coreValues"`
	LeadershipMessage   LeadershipMessage   `bson:"leadershipMessage" json:"leadershipMessage"`
	ContactCTA          ContactCTA          `bson:"contactCTA" json:"contactCTA"`

	Logo      string `bson:"logo,omitempty" json:"logo,omitempty"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	UpdatedBy string `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`

	Version   int64     `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
