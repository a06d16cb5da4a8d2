package models

import "time"

// Rating is a customer's review of a completed booking. One per booking.
type Rating struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	ExpertID   string    `bson:"expertId" json:"expertId"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Feedback   string    `bson:"feedback" json:"feedback"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateRatingRequest is the payload for rating a completed booking.
type CreateRatingRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback  string `json:"feedback"`
}
