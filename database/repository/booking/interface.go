package bookingRepo

import (
	"time"

	"housemate/models"
)

// BookingRepository defines booking data access.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	// ListByCustomer retrieves a customer's bookings, newest first.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByExpert retrieves an expert's bookings, newest first,
	// optionally restricted to the given statuses.
	ListByExpert(expertID string, statuses ...models.BookingStatus) ([]models.Booking, error)
	Create(booking *models.Booking) error
	// Patch applies the non-nil fields of upd and returns the updated booking.
	Patch(id string, upd *models.BookingUpdate) (*models.Booking, error)
	// UpdateStatus transitions a booking from one status to another. It
	// fails when the booking is no longer in the expected status, which
	// serializes concurrent transitions on the same booking.
	UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error)
	// ListUnpaidOlderThan retrieves PENDING_PAYMENT bookings created
	// before the cutoff, for the expiry worker.
	ListUnpaidOlderThan(cutoff time.Time) ([]models.Booking, error)
}
