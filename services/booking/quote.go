package booking

import (
	"math"
	"strings"
	"time"

	"housemate/models"
)

// GSTRate is the flat tax rate applied to the post-discount amount.
const GSTRate = 0.18

// roundRupees rounds half-up to the nearest whole rupee. Inputs are
// never negative here, so half-away-from-zero and half-up coincide.
func roundRupees(v float64) int {
	return int(math.Round(v))
}

// ComputeBase prices the service itself: the base hourly rate as-is.
// A nil service prices to zero; callers reject nil services before a
// booking is ever created.
func ComputeBase(svc *models.Service) int {
	if svc == nil {
		return 0
	}
	return svc.HourlyRateINR
}

// ComputeAddons sums the flat prices of the selected addons. Addon IDs
// not carried by the service are ignored; duplicates count once.
func ComputeAddons(svc *models.Service, addonIDs []string) int {
	if svc == nil {
		return 0
	}
	total := 0
	seen := make(map[string]bool, len(addonIDs))
	for _, id := range addonIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if addon := svc.AddonByID(id); addon != nil {
			total += addon.PriceINR
		}
	}
	return total
}

// TotalDurationMinutes is the service duration plus the duration deltas
// of the selected addons.
func TotalDurationMinutes(svc *models.Service, addonIDs []string) int {
	if svc == nil {
		return 0
	}
	total := svc.DurationMinutes
	seen := make(map[string]bool, len(addonIDs))
	for _, id := range addonIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if addon := svc.AddonByID(id); addon != nil {
			total += addon.DurationMinutes
		}
	}
	return total
}

// ValidateCoupon checks every gating rule for a coupon against the
// order it would discount. It returns nil when the coupon is redeemable
// and a CouponError naming the first failing rule otherwise.
func ValidateCoupon(coupon *models.Coupon, subtotal int, zoneID, serviceID string, now time.Time) error {
	if coupon == nil {
		return NewCouponError(ReasonNotFound, "coupon code not recognized")
	}
	if !coupon.IsActive {
		return NewCouponError(ReasonInactive, "coupon is not active")
	}
	if now.Before(coupon.ValidFrom) {
		return NewCouponError(ReasonNotStarted, "coupon is not yet valid")
	}
	if now.After(coupon.ValidUntil) {
		return NewCouponError(ReasonExpired, "coupon has expired")
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return NewCouponError(ReasonUsageLimit, "coupon usage limit reached")
	}
	if subtotal < coupon.MinOrderValue {
		return NewCouponError(ReasonMinOrder, "order value below coupon minimum")
	}
	if len(coupon.ApplicableZones) > 0 && !containsString(coupon.ApplicableZones, zoneID) {
		return NewCouponError(ReasonZoneScope, "coupon not valid in this zone")
	}
	if len(coupon.ApplicableServices) > 0 && !containsString(coupon.ApplicableServices, serviceID) {
		return NewCouponError(ReasonServiceScope, "coupon not valid for this service")
	}
	return nil
}

// ComputeDiscount computes the rupee discount a valid coupon takes off
// the subtotal. Percentage discounts round half-up before the cap; the
// result is clamped to [0, subtotal].
func ComputeDiscount(coupon *models.Coupon, subtotal int) int {
	var discount int
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		discount = roundRupees(float64(subtotal) * float64(coupon.DiscountValue) / 100.0)
	default:
		discount = coupon.DiscountValue
	}
	if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
		discount = *coupon.MaxDiscount
	}
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// ComputeGST computes the tax on the post-discount amount, rounded to
// whole rupees.
func ComputeGST(taxable int) int {
	return roundRupees(float64(taxable) * GSTRate)
}

// ComputeQuote assembles the full price breakdown for a service, a set
// of addons and an optional coupon. A nil coupon means no discount; the
// coupon must already be validated.
func ComputeQuote(svc *models.Service, addonIDs []string, coupon *models.Coupon) models.QuoteBreakdown {
	base := ComputeBase(svc)
	addons := ComputeAddons(svc, addonIDs)
	subtotal := base + addons

	discount := 0
	if coupon != nil {
		discount = ComputeDiscount(coupon, subtotal)
	}

	taxable := subtotal - discount
	gst := ComputeGST(taxable)

	return models.QuoteBreakdown{
		BaseAmount:     base,
		AddonsAmount:   addons,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		GSTAmount:      gst,
		TotalAmount:    taxable + gst,
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// NormalizeCouponCode uppercases and trims a user-entered coupon code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
