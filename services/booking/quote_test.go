package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housemate/models"
)

func intPtr(v int) *int { return &v }

func deepCleanService() *models.Service {
	return &models.Service{
		ID:              "svc-deep-clean",
		CategoryID:      "cat-cleaning",
		Name:            "Deep Home Cleaning",
		HourlyRateINR:   1000,
		Currency:        "INR",
		DurationMinutes: 120,
		IsActive:        true,
		Addons: []models.ServiceAddon{
			{ID: "addon-sofa", Name: "Sofa Shampoo", PriceINR: 300, DurationMinutes: 30},
			{ID: "addon-fridge", Name: "Fridge Cleaning", PriceINR: 150, DurationMinutes: 20},
		},
	}
}

func validCoupon() *models.Coupon {
	return &models.Coupon{
		ID:            "cpn-1",
		Code:          "WELCOME200",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 200,
		Currency:      "INR",
		ValidFrom:     time.Now().Add(-24 * time.Hour),
		ValidUntil:    time.Now().Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestComputeBase(t *testing.T) {
	svc := deepCleanService()
	assert.Equal(t, 1000, ComputeBase(svc))
	assert.Equal(t, 0, ComputeBase(nil))

	// The rate is charged as-is regardless of duration.
	svc.DurationMinutes = 300
	assert.Equal(t, 1000, ComputeBase(svc))
}

func TestComputeAddons(t *testing.T) {
	svc := deepCleanService()

	assert.Equal(t, 0, ComputeAddons(svc, nil))
	assert.Equal(t, 300, ComputeAddons(svc, []string{"addon-sofa"}))
	assert.Equal(t, 450, ComputeAddons(svc, []string{"addon-sofa", "addon-fridge"}))

	// Unknown IDs are ignored, duplicates count once.
	assert.Equal(t, 300, ComputeAddons(svc, []string{"addon-sofa", "addon-bogus"}))
	assert.Equal(t, 300, ComputeAddons(svc, []string{"addon-sofa", "addon-sofa"}))

	assert.Equal(t, 0, ComputeAddons(nil, []string{"addon-sofa"}))
}

func TestTotalDurationMinutes(t *testing.T) {
	svc := deepCleanService()
	assert.Equal(t, 120, TotalDurationMinutes(svc, nil))
	assert.Equal(t, 170, TotalDurationMinutes(svc, []string{"addon-sofa", "addon-fridge"}))
	assert.Equal(t, 150, TotalDurationMinutes(svc, []string{"addon-sofa", "addon-sofa"}))
}

func TestValidateCoupon(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	base := func() *models.Coupon {
		return &models.Coupon{
			ID:            "cpn-1",
			Code:          "SAVE100",
			DiscountType:  models.DiscountFixed,
			DiscountValue: 100,
			ValidFrom:     now.Add(-time.Hour),
			ValidUntil:    now.Add(time.Hour),
			IsActive:      true,
		}
	}

	tests := []struct {
		name       string
		mutate     func(*models.Coupon)
		subtotal   int
		zoneID     string
		serviceID  string
		wantReason string
	}{
		{"valid", func(c *models.Coupon) {}, 500, "zone-1", "svc-1", ""},
		{"inactive", func(c *models.Coupon) { c.IsActive = false }, 500, "zone-1", "svc-1", ReasonInactive},
		{"not started", func(c *models.Coupon) { c.ValidFrom = now.Add(time.Minute) }, 500, "zone-1", "svc-1", ReasonNotStarted},
		{"expired", func(c *models.Coupon) { c.ValidUntil = now.Add(-time.Minute) }, 500, "zone-1", "svc-1", ReasonExpired},
		{"usage limit reached", func(c *models.Coupon) { c.UsageLimit = intPtr(10); c.UsedCount = 10 }, 500, "zone-1", "svc-1", ReasonUsageLimit},
		{"usage under limit", func(c *models.Coupon) { c.UsageLimit = intPtr(10); c.UsedCount = 9 }, 500, "zone-1", "svc-1", ""},
		{"below min order", func(c *models.Coupon) { c.MinOrderValue = 600 }, 500, "zone-1", "svc-1", ReasonMinOrder},
		{"at min order", func(c *models.Coupon) { c.MinOrderValue = 500 }, 500, "zone-1", "svc-1", ""},
		{"zone scoped out", func(c *models.Coupon) { c.ApplicableZones = []string{"zone-2"} }, 500, "zone-1", "svc-1", ReasonZoneScope},
		{"zone scoped in", func(c *models.Coupon) { c.ApplicableZones = []string{"zone-1", "zone-2"} }, 500, "zone-1", "svc-1", ""},
		{"service scoped out", func(c *models.Coupon) { c.ApplicableServices = []string{"svc-2"} }, 500, "zone-1", "svc-1", ReasonServiceScope},
		{"service scoped in", func(c *models.Coupon) { c.ApplicableServices = []string{"svc-1"} }, 500, "zone-1", "svc-1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := ValidateCoupon(c, tt.subtotal, tt.zoneID, tt.serviceID, now)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var ce *CouponError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.wantReason, ce.Reason)
		})
	}
}

func TestValidateCouponNil(t *testing.T) {
	err := ValidateCoupon(nil, 500, "", "", time.Now())
	var ce *CouponError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ReasonNotFound, ce.Reason)
}

func TestValidateCouponInactiveBeatsExpiry(t *testing.T) {
	// Inactive is checked before the validity window.
	now := time.Now()
	c := validCoupon()
	c.IsActive = false
	c.ValidUntil = now.Add(-time.Hour)

	err := ValidateCoupon(c, 1000, "", "", now)
	var ce *CouponError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ReasonInactive, ce.Reason)
}

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name     string
		coupon   *models.Coupon
		subtotal int
		want     int
	}{
		{"fixed", &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: 200}, 1000, 200},
		{"fixed clamped to subtotal", &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: 900}, 500, 500},
		{"percentage", &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 10}, 1000, 100},
		{"percentage rounds half up", &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 15}, 990, 149},
		{"percentage capped", &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 50, MaxDiscount: intPtr(100)}, 1000, 100},
		{"fixed capped", &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: 300, MaxDiscount: intPtr(250)}, 1000, 250},
		{"negative value floors at zero", &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: -50}, 1000, 0},
		{"full percentage", &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 100}, 750, 750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDiscount(tt.coupon, tt.subtotal))
		})
	}
}

func TestComputeGST(t *testing.T) {
	assert.Equal(t, 144, ComputeGST(800))
	assert.Equal(t, 180, ComputeGST(1000))
	assert.Equal(t, 0, ComputeGST(0))
	// 475 * 0.18 = 85.5, rounds up.
	assert.Equal(t, 86, ComputeGST(475))
}

func TestComputeQuoteNoCoupon(t *testing.T) {
	svc := deepCleanService()
	q := ComputeQuote(svc, []string{"addon-sofa"}, nil)

	assert.Equal(t, 1000, q.BaseAmount)
	assert.Equal(t, 300, q.AddonsAmount)
	assert.Equal(t, 1300, q.Subtotal)
	assert.Equal(t, 0, q.DiscountAmount)
	assert.Equal(t, 1300, q.TaxableAmount)
	assert.Equal(t, 234, q.GSTAmount)
	assert.Equal(t, 1534, q.TotalAmount)
}

func TestComputeQuoteWithFixedCoupon(t *testing.T) {
	svc := deepCleanService()
	svc.HourlyRateINR = 1000

	q := ComputeQuote(svc, nil, validCoupon())

	assert.Equal(t, 1000, q.Subtotal)
	assert.Equal(t, 200, q.DiscountAmount)
	assert.Equal(t, 800, q.TaxableAmount)
	assert.Equal(t, 144, q.GSTAmount)
	assert.Equal(t, 944, q.TotalAmount)
}

func TestComputeQuoteWithCappedPercentage(t *testing.T) {
	svc := deepCleanService()
	coupon := &models.Coupon{
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 50,
		MaxDiscount:   intPtr(100),
	}

	q := ComputeQuote(svc, nil, coupon)

	assert.Equal(t, 1000, q.Subtotal)
	assert.Equal(t, 100, q.DiscountAmount)
	assert.Equal(t, 900, q.TaxableAmount)
	assert.Equal(t, 162, q.GSTAmount)
	assert.Equal(t, 1062, q.TotalAmount)
}

func TestComputeQuoteIsDeterministic(t *testing.T) {
	svc := deepCleanService()
	coupon := validCoupon()
	addons := []string{"addon-fridge", "addon-sofa"}

	first := ComputeQuote(svc, addons, coupon)
	second := ComputeQuote(svc, addons, coupon)
	assert.Equal(t, first, second)
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE100", NormalizeCouponCode("  save100 "))
	assert.Equal(t, "SAVE100", NormalizeCouponCode("Save100"))
}
