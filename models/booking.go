package models

import "time"

// BookingStatus tracks a booking through its lifecycle:
//
//	PENDING_PAYMENT -> PENDING -> CONFIRMED -> IN_PROGRESS -> COMPLETED
//
// with REJECTED (expert declined), CANCELLED_BY_CUSTOMER and CANCELLED
// (unpaid expiry) as terminal side exits.
type BookingStatus string

const (
	BookingPendingPayment      BookingStatus = "PENDING_PAYMENT"
	BookingPending             BookingStatus = "PENDING"
	BookingConfirmed           BookingStatus = "CONFIRMED"
	BookingInProgress          BookingStatus = "IN_PROGRESS"
	BookingCompleted           BookingStatus = "COMPLETED"
	BookingRejected            BookingStatus = "REJECTED"
	BookingCancelled           BookingStatus = "CANCELLED"
	BookingCancelledByCustomer BookingStatus = "CANCELLED_BY_CUSTOMER"
)

// BookingType distinguishes immediate dispatch from scheduled jobs.
type BookingType string

const (
	BookingASAP      BookingType = "ASAP"
	BookingScheduled BookingType = "SCHEDULED"
)

// Booking is the persisted record created when a draft is confirmed.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	CustomerID         string        `bson:"customerId" json:"customerId"`
	ExpertID           string        `bson:"expertId" json:"expertId"`
	ZoneID             string        `bson:"zoneId" json:"zoneId"`
	ServiceID          string        `bson:"serviceId" json:"serviceId"`
	AddressID          string        `bson:"addressId" json:"addressId"`
	Status             BookingStatus `bson:"status" json:"status"`
	BookingType        BookingType   `bson:"bookingType" json:"bookingType"`
	DurationMinutes    int           `bson:"durationMinutes" json:"durationMinutes"`
	AddonIDs           []string      `bson:"addonIds" json:"addonIds"`
	QuotedAmount       int           `bson:"quotedAmount" json:"quotedAmount"` // total incl. GST, whole rupees
	Currency           string        `bson:"currency" json:"currency"`
	CouponCode         string        `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	ETAMinutes         *int          `bson:"etaMinutes,omitempty" json:"etaMinutes,omitempty"` // ASAP only
	ScheduledStartTime *time.Time    `bson:"scheduledStartTime,omitempty" json:"scheduledStartTime,omitempty"`
	ActualStartTime    *time.Time    `bson:"actualStartTime,omitempty" json:"actualStartTime,omitempty"`
	ActualEndTime      *time.Time    `bson:"actualEndTime,omitempty" json:"actualEndTime,omitempty"`
	Notes              string        `bson:"notes" json:"notes"`
	OTP                string        `bson:"otp" json:"-"` // 4-digit job start/end code
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingUpdate enumerates the booking fields that may be patched after
// creation. Nil fields are left untouched.
type BookingUpdate struct {
	Status             *BookingStatus `json:"status,omitempty"`
	ExpertID           *string        `json:"expertId,omitempty"`
	AddressID          *string        `json:"addressId,omitempty"`
	ScheduledStartTime *time.Time     `json:"scheduledStartTime,omitempty"`
	ActualStartTime    *time.Time     `json:"actualStartTime,omitempty"`
	ActualEndTime      *time.Time     `json:"actualEndTime,omitempty"`
	Notes              *string        `json:"notes,omitempty"`
	OTP                *string        `json:"-"`
}

// BookingIntent is the transient input to the availability matcher and
// quote engine. It is never persisted.
type BookingIntent struct {
	ServiceID   string      `json:"serviceId"`
	AddonIDs    []string    `json:"addonIds"`
	ZoneID      string      `json:"zoneId"`
	BookingType BookingType `json:"bookingType"`
	Date        string      `json:"date,omitempty"`     // YYYY-MM-DD, scheduled only
	TimeSlot    string      `json:"timeSlot,omitempty"` // e.g. "09:00 AM", scheduled only
}

// DraftStep is the position of a booking draft in its state machine.
type DraftStep string

const (
	StepSelectingService           DraftStep = "SELECTING_SERVICE"
	StepSelectingScheduleAndExpert DraftStep = "SELECTING_SCHEDULE_AND_EXPERT"
	StepSelectingAddress           DraftStep = "SELECTING_ADDRESS"
	StepReviewAndPay               DraftStep = "REVIEW_AND_PAY"
)

// BookingDraft is the per-customer draft session. It lives in the cache
// for the duration of the flow; REVIEW_AND_PAY is the only step that may
// create the Booking record.
type BookingDraft struct {
	SessionID       string        `json:"sessionId"`
	CustomerID      string        `json:"customerId"`
	Step            DraftStep     `json:"step"`
	Intent          BookingIntent `json:"intent"`
	ExpertID        string        `json:"expertId,omitempty"`
	AddressID       string        `json:"addressId,omitempty"`
	CouponCode      string        `json:"couponCode,omitempty"`
	DurationMinutes int           `json:"durationMinutes"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// DraftUpdate carries one round of user input against a draft. Nil
// fields are left untouched; setting a field re-runs matching and the
// quote from the reference-data snapshot.
type DraftUpdate struct {
	Step        *DraftStep   `json:"step,omitempty"`
	ServiceID   *string      `json:"serviceId,omitempty"`
	AddonIDs    []string     `json:"addonIds,omitempty"`
	ZoneID      *string      `json:"zoneId,omitempty"`
	BookingType *BookingType `json:"bookingType,omitempty"`
	Date        *string      `json:"date,omitempty"`
	TimeSlot    *string      `json:"timeSlot,omitempty"`
	ExpertID    *string      `json:"expertId,omitempty"`
	AddressID   *string      `json:"addressId,omitempty"`
	CouponCode  *string      `json:"couponCode,omitempty"`
	SearchText  *string      `json:"searchText,omitempty"`
}

// DraftView is what the API returns after every draft mutation: the
// draft plus everything derived from it in the same call.
type DraftView struct {
	Draft           BookingDraft    `json:"draft"`
	Quote           QuoteBreakdown  `json:"quote"`
	EligibleExperts []ExpertProfile `json:"eligibleExperts"`
	ExpertCount     int             `json:"expertCount"`
	CouponError     string          `json:"couponError,omitempty"`
	MatchWarning    string          `json:"matchWarning,omitempty"`
}
