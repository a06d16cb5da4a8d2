package catalogRepo

import (
	"housemate/models"
)

// CatalogRepository defines read access to the service catalog:
// categories, zones and services. The booking flow treats the catalog
// as immutable reference data; writes exist for seeding and admin use.
type CatalogRepository interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)
	ListZones() ([]models.Zone, error)
	GetZone(id string) (*models.Zone, error)
	ListServices() ([]models.Service, error)
	// ListServicesByCategory retrieves the active services under one category.
	ListServicesByCategory(categoryID string) ([]models.Service, error)
	GetService(id string) (*models.Service, error)

	CreateCategory(cat *models.Category) error
	CreateZone(zone *models.Zone) error
	CreateService(svc *models.Service) error
}

// CouponRepository defines coupon data access. Codes are matched
// case-insensitively.
type CouponRepository interface {
	// GetByCode retrieves a coupon by code regardless of case. Returns
	// nil when no such coupon exists.
	GetByCode(code string) (*models.Coupon, error)
	ListActive() ([]models.Coupon, error)
	Create(coupon *models.Coupon) error
	// IncrementUsage bumps the coupon's used counter after a booking
	// that redeemed it is paid for.
	IncrementUsage(id string) error
}
