package booking

import (
	"crypto/subtle"
	"time"

	"housemate/models"
	"housemate/utils"
)

// verifyOTP compares codes in constant time.
func verifyOTP(expected, given string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}

// StartJob verifies the customer's OTP in person and moves the booking
// to IN_PROGRESS.
func (s *DefaultBookingService) StartJob(bookingID, expertID, otp string) (*models.Booking, error) {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.ExpertID != expertID {
		return nil, NewFlowError("bookingForbidden", "booking is assigned to another expert")
	}
	if bk.Status != models.BookingConfirmed {
		return nil, NewFlowError("invalidTransition", "booking is not ready to start")
	}
	if !verifyOTP(bk.OTP, otp) {
		return nil, NewFlowError("invalidOtp", "start code does not match")
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, models.BookingConfirmed, models.BookingInProgress)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return s.BookingRepo.Patch(updated.ID, &models.BookingUpdate{ActualStartTime: &now})
}

// CompleteJob verifies the OTP again and moves the booking to COMPLETED.
func (s *DefaultBookingService) CompleteJob(bookingID, expertID, otp string) (*models.Booking, error) {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.ExpertID != expertID {
		return nil, NewFlowError("bookingForbidden", "booking is assigned to another expert")
	}
	if bk.Status != models.BookingInProgress {
		return nil, NewFlowError("invalidTransition", "booking is not in progress")
	}
	if !verifyOTP(bk.OTP, otp) {
		return nil, NewFlowError("invalidOtp", "completion code does not match")
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, models.BookingInProgress, models.BookingCompleted)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	updated, err = s.BookingRepo.Patch(updated.ID, &models.BookingUpdate{ActualEndTime: &now})
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(updated, "Job completed", "Rate your experience to help other customers.")
	return updated, nil
}

// RegenerateOTP issues a fresh job code for a booking the customer owns.
// Only allowed before the job starts, since the expert may already have
// typed the old code once work is underway.
func (s *DefaultBookingService) RegenerateOTP(bookingID, customerID string) (*models.Booking, error) {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.CustomerID != customerID {
		return nil, NewFlowError("bookingForbidden", "booking belongs to another customer")
	}
	switch bk.Status {
	case models.BookingPendingPayment, models.BookingPending, models.BookingConfirmed:
	default:
		return nil, NewFlowError("invalidTransition", "job code can only be regenerated before the job starts")
	}

	otp, err := utils.GenerateJobOTP()
	if err != nil {
		return nil, err
	}
	return s.BookingRepo.Patch(bk.ID, &models.BookingUpdate{OTP: &otp})
}

// SendReminder pushes an upcoming-job reminder to both sides. Called by
// the background worker at the scheduled lead time.
func (s *DefaultBookingService) SendReminder(bookingID string) error {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return err
	}
	// The job may have been cancelled since the reminder was scheduled.
	if bk.Status != models.BookingConfirmed {
		return nil
	}
	s.notifyCustomer(bk, "Upcoming booking", "Your expert arrives soon.")
	s.notifyExpert(bk, "Upcoming job", "You have a confirmed job starting soon.")
	return nil
}
