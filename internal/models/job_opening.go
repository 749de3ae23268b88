package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái tin tuyển dụng.
const (
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
	JobStatusClosed   = "closed"
)

type JobOpening struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Requirements string             `bson:"requirements" json:"requirements"`
	// SalaryText/QuantityText là chuỗi hiển thị tự do ("Thỏa thuận", "05 người"),
	// không phải số có cấu trúc.
	SalaryText   string    `bson:"salaryText" json:"salaryText"`
	QuantityText string    `bson:"quantityText" json:"quantityText"`
	Location     string    `bson:"location" json:"location"`
	Experience   string    `bson:"experience" json:"experience"`
	PostedAt     time.Time `bson:"postedAt" json:"postedAt"`
	Deadline     time.Time `bson:"deadline" json:"deadline"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type JobOpeningPatch struct {
	Title        *string    `bson:"title,omitempty"`
	Description  *string    `bson:"description,omitempty"`
	Requirements *string    `bson:"requirements,omitempty"`
	SalaryText   *string    `bson:"salaryText,omitempty"`
	QuantityText *string    `bson:"quantityText,omitempty"`
	Location     *string    `bson:"location,omitempty"`
	Experience   *string    `bson:"experience,omitempty"`
	Deadline     *time.Time `bson:"deadline,omitempty"`
	Status       *string    `bson:"status,omitempty"`
}
