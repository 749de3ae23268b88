// Package mongostore hiện thực các interface trong package store trên MongoDB.
package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Tên các collection.
const (
	collCompanies   = "companies"
	collBrands      = "brands"
	collProducts    = "products"
	collJobOpenings = "job_openings"
	collProfiles    = "company_profiles"
	collCounters    = "counters"
	collAdmins      = "admins"
)

// Stores gom tất cả các store chạy trên cùng một database.
type Stores struct {
	Companies   *CompanyStore
	Brands      *BrandStore
	Products    *ProductStore
	JobOpenings *JobOpeningStore
	Admins      *AdminStore
	Profiles    *ProfileStore
	Counters    *CounterStore
}

func New(db *mongo.Database) *Stores {
	return &Stores{
		Companies:   &CompanyStore{db: db},
		Brands:      &BrandStore{db: db},
		Products:    &ProductStore{db: db},
		JobOpenings: &JobOpeningStore{db: db},
		Admins:      &AdminStore{db: db},
		Profiles:    &ProfileStore{db: db},
		Counters:    &CounterStore{db: db},
	}
}

// patchToSet chuyển một patch struct (field nil bị bỏ qua nhờ omitempty)
// thành document cho $set, kèm updatedAt.
func patchToSet(patch interface{}) (bson.M, error) {
	data, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	set["updatedAt"] = time.Now()
	return set, nil
}
