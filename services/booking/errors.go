package booking

import "fmt"

// Coupon rejection reasons, stable across API responses.
const (
	ReasonNotFound     = "couponNotFound"
	ReasonInactive     = "couponInactive"
	ReasonNotStarted   = "couponNotStarted"
	ReasonExpired      = "couponExpired"
	ReasonUsageLimit   = "couponUsageLimit"
	ReasonMinOrder     = "couponMinOrder"
	ReasonZoneScope    = "couponZoneScope"
	ReasonServiceScope = "couponServiceScope"
)

// CouponError reports why a coupon was rejected. Rejection never aborts
// a quote; callers surface the reason and price without the coupon.
type CouponError struct {
	Reason  string
	Message string
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func NewCouponError(reason, msg string) error {
	return &CouponError{Reason: reason, Message: msg}
}

// MatchError reports a non-recoverable matcher failure, such as a
// repository read error. An empty match result is not an error.
type MatchError struct {
	Code    string
	Message string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMatchError(msg string) error {
	return &MatchError{Code: "matchError", Message: msg}
}

// FlowError reports an invalid booking state transition or draft step.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, msg string) error {
	return &FlowError{Code: code, Message: msg}
}
