package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"housemate/models"
	"housemate/utils"
)

// Pay records a mock payment against a PENDING_PAYMENT booking and
// moves it to PENDING for the expert to accept. There is no gateway:
// the payment always succeeds and the transaction ID is generated
// locally.
func (s *DefaultBookingService) Pay(bookingID, customerID string, method models.PaymentMethod) (*models.Booking, *models.Payment, error) {
	bk, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, nil, err
	}
	if bk.CustomerID != customerID {
		return nil, nil, NewFlowError("bookingForbidden", "booking belongs to another customer")
	}
	if bk.Status != models.BookingPendingPayment {
		return nil, nil, NewFlowError("invalidTransition", "booking is not awaiting payment")
	}

	payment := models.Payment{
		ID:            uuid.New().String(),
		BookingID:     bk.ID,
		CustomerID:    customerID,
		Amount:        bk.QuotedAmount,
		Currency:      bk.Currency,
		Status:        models.PaymentSucceeded,
		Method:        method,
		TransactionID: fmt.Sprintf("TXN-%d", time.Now().UnixNano()),
		ReceiptID:     fmt.Sprintf("RCPT-%s", uuid.New().String()[:8]),
	}
	if err := s.PaymentRepo.Create(&payment); err != nil {
		return nil, nil, err
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, models.BookingPendingPayment, models.BookingPending)
	if err != nil {
		return nil, nil, err
	}

	if updated.CouponCode != "" {
		if coupon, cerr := s.CouponRepo.GetByCode(updated.CouponCode); cerr == nil && coupon != nil {
			if ierr := s.CouponRepo.IncrementUsage(coupon.ID); ierr != nil {
				utils.GetLogger().Warn("failed to count coupon redemption",
					zap.String("coupon", coupon.Code), zap.Error(ierr))
			}
		}
	}

	s.notifyExpert(updated, "New job request", "A paid booking is waiting for your response.")
	return updated, &payment, nil
}

// ExpireUnpaid cancels PENDING_PAYMENT bookings older than the payment
// window. Returns the number of bookings cancelled.
func (s *DefaultBookingService) ExpireUnpaid() (int, error) {
	cutoff := time.Now().Add(-s.PaymentTTL)
	stale, err := s.BookingRepo.ListUnpaidOlderThan(cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, bk := range stale {
		if _, err := s.BookingRepo.UpdateStatus(bk.ID, models.BookingPendingPayment, models.BookingCancelled); err != nil {
			// A concurrent payment may have won; skip quietly.
			utils.GetLogger().Debug("skipping expiry", zap.String("bookingId", bk.ID), zap.Error(err))
			continue
		}
		expired++
	}
	if expired > 0 {
		utils.GetLogger().Info("expired unpaid bookings", zap.Int("count", expired))
	}
	return expired, nil
}
