package recordsRepo

import (
	"housemate/models"
)

// PaymentRepository defines payment record data access.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByBookingID(bookingID string) (*models.Payment, error)
	ListByCustomer(customerID string) ([]models.Payment, error)
}

// RatingRepository defines rating data access. One rating per booking.
type RatingRepository interface {
	Create(rating *models.Rating) error
	GetByBookingID(bookingID string) (*models.Rating, error)
	ListByExpert(expertID string) ([]models.Rating, error)
}
