package booking

import (
	"time"

	bookingRepo "housemate/database/repository/booking"
	catalogRepo "housemate/database/repository/catalog"
	expertRepo "housemate/database/repository/expert"
	recordsRepo "housemate/database/repository/records"
	userRepo "housemate/database/repository/user"
	"housemate/models"
	"housemate/services/notification"
)

// DraftService manages the stateful booking draft session a customer
// walks through before a booking exists.
type DraftService interface {
	// StartDraft opens a new draft session for a customer.
	StartDraft(customerID string) (*models.DraftView, error)
	// GetDraft re-derives the view for an existing session.
	GetDraft(sessionID, customerID string) (*models.DraftView, error)
	// UpdateDraft applies one round of user input; every derived field
	// (quote, eligible experts, coupon validity) is recomputed.
	UpdateDraft(sessionID, customerID string, upd *models.DraftUpdate) (*models.DraftView, error)
	// ConfirmDraft turns a REVIEW_AND_PAY draft into a PENDING_PAYMENT
	// booking and discards the session.
	ConfirmDraft(sessionID, customerID string) (*models.Booking, error)
	// CancelDraft discards a session.
	CancelDraft(sessionID, customerID string) error
}

// BookingService manages bookings after the draft is confirmed.
type BookingService interface {
	GetBooking(id string) (*models.Booking, error)
	ListCustomerBookings(customerID string) ([]models.Booking, error)
	ListExpertBookings(expertID string, statuses ...models.BookingStatus) ([]models.Booking, error)

	// Pay records a mock payment against a PENDING_PAYMENT booking and
	// moves it to PENDING for the expert to accept.
	Pay(bookingID, customerID string, method models.PaymentMethod) (*models.Booking, *models.Payment, error)
	// CancelByCustomer cancels a booking that has not started yet.
	CancelByCustomer(bookingID, customerID string) (*models.Booking, error)
	// Modify patches a booking's mutable fields before the job starts.
	Modify(bookingID, customerID string, upd *models.BookingUpdate) (*models.Booking, error)

	// Accept moves a paid booking to CONFIRMED and, for scheduled jobs,
	// takes the booked slot off the expert's published availability.
	Accept(bookingID, expertID string) (*models.Booking, error)
	// Reject declines a paid booking.
	Reject(bookingID, expertID string) (*models.Booking, error)
	// StartJob verifies the customer's OTP and moves the booking to
	// IN_PROGRESS.
	StartJob(bookingID, expertID, otp string) (*models.Booking, error)
	// CompleteJob verifies the OTP again and moves the booking to
	// COMPLETED.
	CompleteJob(bookingID, expertID, otp string) (*models.Booking, error)
	// RegenerateOTP replaces the job code on a booking that has not
	// started, for a customer who lost the original.
	RegenerateOTP(bookingID, customerID string) (*models.Booking, error)

	// ExpireUnpaid cancels PENDING_PAYMENT bookings older than the
	// configured payment window. Used by the background worker.
	ExpireUnpaid() (int, error)
	// SendReminder pushes an upcoming-job reminder for a booking.
	SendReminder(bookingID string) error
}

// TaskScheduler enqueues deferred booking work. Implemented on asynq in
// the cron package; the indirection keeps this package queue-agnostic.
type TaskScheduler interface {
	ScheduleExpiry(bookingID string, delay time.Duration) error
	ScheduleReminder(bookingID string, at time.Time) error
}

// DefaultDraftService implements DraftService on the Redis draft cache.
type DefaultDraftService struct {
	CatalogRepo    catalogRepo.CatalogRepository
	CouponRepo     catalogRepo.CouponRepository
	AddressRepo    userRepo.AddressRepository
	MatchingSvc    MatchingService
	BookingRepo    bookingRepo.BookingRepository
	Scheduler      TaskScheduler
	DraftTTL       time.Duration
	PaymentTTL     time.Duration
	ASAPDefaultETA int
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo      bookingRepo.BookingRepository
	PaymentRepo      recordsRepo.PaymentRepository
	CouponRepo       catalogRepo.CouponRepository
	ExpertRepo       expertRepo.ExpertRepository
	AvailabilityRepo expertRepo.AvailabilityRepository
	NotificationSvc  notification.NotificationService
	Scheduler        TaskScheduler
	PaymentTTL       time.Duration
	ReminderLead     time.Duration
}
