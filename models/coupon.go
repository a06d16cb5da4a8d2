package models

import "time"

// CouponDiscountType enumerates how a coupon's value is interpreted.
type CouponDiscountType string

const (
	DiscountFixed      CouponDiscountType = "FIXED"
	DiscountPercentage CouponDiscountType = "PERCENTAGE"
)

// Coupon is reference data read by the quote engine. Codes are unique
// case-insensitively. Empty ApplicableZones/ApplicableServices means the
// coupon applies universally.
type Coupon struct {
	ID                 string             `bson:"id" json:"id"`
	Code               string             `bson:"code" json:"code"`
	Description        string             `bson:"description" json:"description,omitempty"`
	DiscountType       CouponDiscountType `bson:"discountType" json:"discountType"`
	DiscountValue      int                `bson:"discountValue" json:"discountValue"`
	Currency           string             `bson:"currency" json:"currency"`
	MinOrderValue      int                `bson:"minOrderValue" json:"minOrderValue"`
	MaxDiscount        *int               `bson:"maxDiscount,omitempty" json:"maxDiscount,omitempty"` // nil = uncapped
	ValidFrom          time.Time          `bson:"validFrom" json:"validFrom"`
	ValidUntil         time.Time          `bson:"validUntil" json:"validUntil"`
	UsageLimit         *int               `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	UsedCount          int                `bson:"usedCount" json:"usedCount"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	ApplicableZones    []string           `bson:"applicableZones" json:"applicableZones,omitempty"`
	ApplicableServices []string           `bson:"applicableServices" json:"applicableServices,omitempty"`
}
