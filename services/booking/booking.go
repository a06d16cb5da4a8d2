package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"housemate/models"
	"housemate/utils"
)

// GetBooking retrieves a booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	bk, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, NewFlowError("bookingNotFound", "booking not found")
	}
	return bk, nil
}

// ListCustomerBookings retrieves a customer's bookings, newest first.
func (s *DefaultBookingService) ListCustomerBookings(customerID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByCustomer(customerID)
}

// ListExpertBookings retrieves an expert's bookings, newest first.
func (s *DefaultBookingService) ListExpertBookings(expertID string, statuses ...models.BookingStatus) ([]models.Booking, error) {
	return s.BookingRepo.ListByExpert(expertID, statuses...)
}

// CancelByCustomer cancels a booking that has not started yet.
func (s *DefaultBookingService) CancelByCustomer(bookingID, customerID string) (*models.Booking, error) {
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
		return nil, NewFlowError("invalidTransition", "booking can no longer be cancelled")
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, bk.Status, models.BookingCancelledByCustomer)
	if err != nil {
		return nil, err
	}

	s.notifyExpert(updated, "Booking cancelled", "The customer cancelled an upcoming job.")
	return updated, nil
}

// Modify patches a booking's address, schedule or notes before the job
// starts. Status and OTP changes go through the dedicated transitions.
func (s *DefaultBookingService) Modify(bookingID, customerID string, upd *models.BookingUpdate) (*models.Booking, error) {
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
		return nil, NewFlowError("invalidTransition", "booking can no longer be modified")
	}

	patch := &models.BookingUpdate{
		AddressID:          upd.AddressID,
		ScheduledStartTime: upd.ScheduledStartTime,
		Notes:              upd.Notes,
	}
	return s.BookingRepo.Patch(bookingID, patch)
}

// Accept moves a paid booking to CONFIRMED. For scheduled jobs the
// booked slot comes off the expert's published availability so the
// matcher stops offering it.
func (s *DefaultBookingService) Accept(bookingID, expertID string) (*models.Booking, error) {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.ExpertID != expertID {
		return nil, NewFlowError("bookingForbidden", "booking is assigned to another expert")
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, models.BookingPending, models.BookingConfirmed)
	if err != nil {
		return nil, err
	}

	if updated.BookingType == models.BookingScheduled && updated.ScheduledStartTime != nil {
		date := updated.ScheduledStartTime.Format("2006-01-02")
		slot := updated.ScheduledStartTime.Format("03:04 PM")
		if err := s.AvailabilityRepo.RemoveSlot(expertID, date, slot); err != nil {
			utils.GetLogger().Warn("failed to release booked slot",
				zap.String("bookingId", bookingID), zap.Error(err))
		}
		if s.Scheduler != nil {
			remindAt := updated.ScheduledStartTime.Add(-s.ReminderLead)
			if remindAt.After(time.Now()) {
				if err := s.Scheduler.ScheduleReminder(bookingID, remindAt); err != nil {
					utils.GetLogger().Warn("failed to schedule reminder",
						zap.String("bookingId", bookingID), zap.Error(err))
				}
			}
		}
	}

	s.notifyCustomer(updated, "Booking confirmed", "Your expert accepted the job.")
	return updated, nil
}

// Reject declines a paid booking.
func (s *DefaultBookingService) Reject(bookingID, expertID string) (*models.Booking, error) {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.ExpertID != expertID {
		return nil, NewFlowError("bookingForbidden", "booking is assigned to another expert")
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, models.BookingPending, models.BookingRejected)
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(updated, "Booking declined", "Your expert could not take the job.")
	return updated, nil
}

func (s *DefaultBookingService) notifyCustomer(bk *models.Booking, title, body string) {
	if s.NotificationSvc == nil {
		return
	}
	data := map[string]string{"bookingId": bk.ID, "status": string(bk.Status)}
	if err := s.NotificationSvc.SendCustomerPush(context.Background(), bk.CustomerID, title, body, data); err != nil {
		utils.GetLogger().Warn("customer push failed", zap.String("bookingId", bk.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) notifyExpert(bk *models.Booking, title, body string) {
	if s.NotificationSvc == nil {
		return
	}
	data := map[string]string{"bookingId": bk.ID, "status": string(bk.Status)}
	if err := s.NotificationSvc.SendExpertPush(context.Background(), bk.ExpertID, title, body, data); err != nil {
		utils.GetLogger().Warn("expert push failed", zap.String("bookingId", bk.ID), zap.Error(err))
	}
}
