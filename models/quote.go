package models

// QuoteBreakdown is the price summary for a prospective booking. All
// amounts are whole rupees, rounded half-up at each rounding step.
// Invariants: TotalAmount >= GSTAmount >= 0 and
// 0 <= DiscountAmount <= Subtotal.
type QuoteBreakdown struct {
	BaseAmount     int `json:"baseAmount"`
	AddonsAmount   int `json:"addonsAmount"`
	Subtotal       int `json:"subtotal"`
	DiscountAmount int `json:"discountAmount"`
	TaxableAmount  int `json:"taxableAmount"`
	GSTAmount      int `json:"gstAmount"`
	TotalAmount    int `json:"totalAmount"`
}
