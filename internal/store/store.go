// Package store định nghĩa hợp đồng truy cập dữ liệu cho các handler.
// Hiện có hai hiện thực: mongostore (MongoDB) và memstore (in-memory, dùng
// cho test).
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/models"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrVersionConflict = errors.New("profile version conflict")
)

// CascadeResult là số lượng document phụ thuộc đã bị xóa theo một company.
type CascadeResult struct {
	Brands   int64
	Products int64
}

// Stores gom toàn bộ hợp đồng dữ liệu lại để truyền cho router.
type Stores struct {
	Companies   CompanyStore
	Brands      BrandStore
	Products    ProductStore
	JobOpenings JobOpeningStore
	Admins      AdminStore
	Profiles    ProfileStore
	Counters    CounterStore
}

type CompanyStore interface {
	List(ctx context.Context) ([]models.Company, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.CompanyPatch) (*models.Company, error)
	// Delete xóa company cùng toàn bộ brand thuộc nó và product của các
	// brand đó, trả về company đã xóa và số dependent bị xóa.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Company, *CascadeResult, error)
	// RecordVisit tăng visitors lên 1 (atomic) và trả về giá trị mới.
	RecordVisit(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type BrandStore interface {
	// List trả về brand đã populate company; companyID nil nghĩa là tất cả.
	List(ctx context.Context, companyID *primitive.ObjectID) ([]models.BrandDetail, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BrandDetail, error)
	Create(ctx context.Context, brand *models.Brand) (*models.BrandDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.BrandPatch) (*models.BrandDetail, error)
	// Delete xóa brand cùng toàn bộ product thuộc nó, trả về brand đã xóa
	// và số product bị xóa.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Brand, int64, error)
}

type ProductStore interface {
	List(ctx context.Context, brandID *primitive.ObjectID) ([]models.ProductDetail, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, error)
	Create(ctx context.Context, product *models.Product) (*models.ProductDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.ProductDetail, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type JobOpeningStore interface {
	// List lọc theo status (rỗng = tất cả), sort postedAt giảm dần,
	// limit <= 0 nghĩa là không giới hạn.
	List(ctx context.Context, status string, limit int64) ([]models.JobOpening, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobOpening, error)
	Create(ctx context.Context, job *models.JobOpening) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.JobOpeningPatch) (*models.JobOpening, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Count(ctx context.Context) (int64, error)
}

type ProfileStore interface {
	// Get trả về (nil, nil) khi chưa có profile nào được lưu.
	Get(ctx context.Context) (*models.CompanyProfile, error)
	// Upsert ghi đè toàn bộ document. Nếu expectedVersion != nil thì chỉ ghi
	// khi version hiện tại khớp, ngược lại trả về ErrVersionConflict.
	Upsert(ctx context.Context, profile *models.CompanyProfile, expectedVersion *int64) (*models.CompanyProfile, error)
}

type CounterStore interface {
	Get(ctx context.Context, key string) (int64, error)
	// Increment là $inc với upsert: tạo counter nếu chưa có, trả về giá
	// trị sau khi tăng.
	Increment(ctx context.Context, key string, step int64) (int64, error)
}
