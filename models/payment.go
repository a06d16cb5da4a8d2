package models

import "time"

// PaymentMethod enumerates the supported (mocked) payment instruments.
type PaymentMethod string

const (
	PayCard       PaymentMethod = "CARD"
	PayUPI        PaymentMethod = "UPI"
	PayNetBanking PaymentMethod = "NET_BANKING"
)

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentPending   PaymentStatus = "PENDING"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment records one payment attempt against a booking. There is no
// gateway behind it; the transaction id is generated locally.
type Payment struct {
	ID            string        `bson:"id" json:"id"`
	BookingID     string        `bson:"bookingId" json:"bookingId"`
	CustomerID    string        `bson:"customerId" json:"customerId"`
	Amount        int           `bson:"amount" json:"amount"`
	Currency      string        `bson:"currency" json:"currency"`
	Status        PaymentStatus `bson:"status" json:"status"`
	Method        PaymentMethod `bson:"method" json:"method"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	ReceiptID     string        `bson:"receiptId,omitempty" json:"receiptId,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// PayRequest is the payload for paying a PENDING_PAYMENT booking.
type PayRequest struct {
	Method PaymentMethod `json:"method" binding:"required"`
}
