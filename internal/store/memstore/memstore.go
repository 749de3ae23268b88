// Package memstore là hiện thực in-memory của các interface trong package
// store. Dùng cho test handler: giữ đúng hợp đồng populate, cascade delete
// và counter atomic mà không cần một mongod thật.
package memstore

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/models"
)

type data struct {
	mu sync.RWMutex

	companies map[primitive.ObjectID]models.Company
	brands    map[primitive.ObjectID]models.Brand
	products  map[primitive.ObjectID]models.Product
	jobs      map[primitive.ObjectID]models.JobOpening
	admins    map[primitive.ObjectID]models.Admin
	profile   *models.CompanyProfile
	counters  map[string]int64

	// Thứ tự insert của từng collection, để giả lập sort createdAt desc
	// ổn định kể cả khi timestamp trùng nhau.
	companyOrder []primitive.ObjectID
	brandOrder   []primitive.ObjectID
	productOrder []primitive.ObjectID
	jobOrder     []primitive.ObjectID
}

// Stores gom các store chạy trên cùng một vùng dữ liệu in-memory,
// cùng hình dạng với mongostore.Stores.
type Stores struct {
	Companies   *CompanyStore
	Brands      *BrandStore
	Products    *ProductStore
	JobOpenings *JobOpeningStore
	Admins      *AdminStore
	Profiles    *ProfileStore
	Counters    *CounterStore
}

func New() *Stores {
	d := &data{
		companies: make(map[primitive.ObjectID]models.Company),
		brands:    make(map[primitive.ObjectID]models.Brand),
		products:  make(map[primitive.ObjectID]models.Product),
		jobs:      make(map[primitive.ObjectID]models.JobOpening),
		admins:    make(map[primitive.ObjectID]models.Admin),
		counters:  make(map[string]int64),
	}
	return &Stores{
		Companies:   &CompanyStore{d: d},
		Brands:      &BrandStore{d: d},
		Products:    &ProductStore{d: d},
		JobOpenings: &JobOpeningStore{d: d},
		Admins:      &AdminStore{d: d},
		Profiles:    &ProfileStore{d: d},
		Counters:    &CounterStore{d: d},
	}
}

// removeID xóa một id khỏi slice thứ tự.
func removeID(order []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// companyRef tạo CompanyRef nếu company còn tồn tại, nil nếu dangling.
func (d *data) companyRef(id primitive.ObjectID) *models.CompanyRef {
	if company, ok := d.companies[id]; ok {
		return &models.CompanyRef{ID: company.ID, Name: company.Name}
	}
	return nil
}

// brandRef tạo BrandRef (kèm company lồng bên trong) nếu brand còn tồn tại.
func (d *data) brandRef(id primitive.ObjectID) *models.BrandRef {
	if brand, ok := d.brands[id]; ok {
		return &models.BrandRef{ID: brand.ID, Name: brand.Name, Company: d.companyRef(brand.CompanyID)}
	}
	return nil
}
