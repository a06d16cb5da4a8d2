package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "housemate/database/repository/booking"
	"housemate/models"
)

// stubBookingRepo keeps bookings in memory and mimics the CAS semantics
// of UpdateStatus.
type stubBookingRepo struct {
	bookings map[string]*models.Booking
}

func newStubBookingRepo(bookings ...*models.Booking) *stubBookingRepo {
	r := &stubBookingRepo{bookings: map[string]*models.Booking{}}
	for _, bk := range bookings {
		r.bookings[bk.ID] = bk
	}
	return r
}

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.bookings[id], nil
}

func (r *stubBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.CustomerID == customerID {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListByExpert(expertID string, statuses ...models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.ExpertID != expertID {
			continue
		}
		if len(statuses) == 0 {
			out = append(out, *bk)
			continue
		}
		for _, st := range statuses {
			if bk.Status == st {
				out = append(out, *bk)
				break
			}
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Create(bk *models.Booking) error {
	r.bookings[bk.ID] = bk
	return nil
}

func (r *stubBookingRepo) Patch(id string, upd *models.BookingUpdate) (*models.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	if upd.Status != nil {
		bk.Status = *upd.Status
	}
	if upd.ExpertID != nil {
		bk.ExpertID = *upd.ExpertID
	}
	if upd.AddressID != nil {
		bk.AddressID = *upd.AddressID
	}
	if upd.ScheduledStartTime != nil {
		bk.ScheduledStartTime = upd.ScheduledStartTime
	}
	if upd.ActualStartTime != nil {
		bk.ActualStartTime = upd.ActualStartTime
	}
	if upd.ActualEndTime != nil {
		bk.ActualEndTime = upd.ActualEndTime
	}
	if upd.OTP != nil {
		bk.OTP = *upd.OTP
	}
	return bk, nil
}

func (r *stubBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok || bk.Status != from {
		return nil, fmt.Errorf("booking %s not in status %s: %w", id, from, bookingRepo.ErrStatusConflict)
	}
	bk.Status = to
	return bk, nil
}

func (r *stubBookingRepo) ListUnpaidOlderThan(cutoff time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.Status == models.BookingPendingPayment && bk.CreatedAt.Before(cutoff) {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func TestVerifyOTP(t *testing.T) {
	assert.True(t, verifyOTP("4821", "4821"))
	assert.False(t, verifyOTP("4821", "4822"))
	assert.False(t, verifyOTP("4821", ""))
}

func TestRegenerateOTP(t *testing.T) {
	repo := newStubBookingRepo(&models.Booking{
		ID:         "bk-1",
		CustomerID: "cust-1",
		Status:     models.BookingPending,
		OTP:        "1111",
	})
	svc := &DefaultBookingService{BookingRepo: repo}

	bk, err := svc.RegenerateOTP("bk-1", "cust-1")
	require.NoError(t, err)
	assert.Len(t, bk.OTP, 4)
	assert.NotEqual(t, "", bk.OTP)
	assert.Equal(t, models.BookingPending, bk.Status)
}

func TestRegenerateOTPOwnerOnly(t *testing.T) {
	repo := newStubBookingRepo(&models.Booking{
		ID:         "bk-1",
		CustomerID: "cust-1",
		Status:     models.BookingConfirmed,
		OTP:        "1111",
	})
	svc := &DefaultBookingService{BookingRepo: repo}

	_, err := svc.RegenerateOTP("bk-1", "cust-2")
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "bookingForbidden", fe.Code)
}

func TestRegenerateOTPRejectedAfterStart(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.BookingInProgress,
		models.BookingCompleted,
		models.BookingCancelled,
		models.BookingRejected,
	} {
		repo := newStubBookingRepo(&models.Booking{
			ID:         "bk-1",
			CustomerID: "cust-1",
			Status:     status,
			OTP:        "1111",
		})
		svc := &DefaultBookingService{BookingRepo: repo}

		_, err := svc.RegenerateOTP("bk-1", "cust-1")
		var fe *FlowError
		require.ErrorAs(t, err, &fe, "status %s", status)
		assert.Equal(t, "invalidTransition", fe.Code)
	}
}

func TestRegenerateOTPNotFound(t *testing.T) {
	svc := &DefaultBookingService{BookingRepo: newStubBookingRepo()}

	_, err := svc.RegenerateOTP("missing", "cust-1")
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "bookingNotFound", fe.Code)
}

func TestStartJobVerifiesOTP(t *testing.T) {
	repo := newStubBookingRepo(&models.Booking{
		ID:         "bk-1",
		CustomerID: "cust-1",
		ExpertID:   "exp-1",
		Status:     models.BookingConfirmed,
		OTP:        "4821",
	})
	svc := &DefaultBookingService{BookingRepo: repo}

	_, err := svc.StartJob("bk-1", "exp-1", "0000")
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "invalidOtp", fe.Code)

	bk, err := svc.StartJob("bk-1", "exp-1", "4821")
	require.NoError(t, err)
	assert.Equal(t, models.BookingInProgress, bk.Status)
	require.NotNil(t, bk.ActualStartTime)
}

func TestCompleteJobVerifiesOTP(t *testing.T) {
	repo := newStubBookingRepo(&models.Booking{
		ID:         "bk-1",
		CustomerID: "cust-1",
		ExpertID:   "exp-1",
		Status:     models.BookingInProgress,
		OTP:        "4821",
	})
	svc := &DefaultBookingService{BookingRepo: repo}

	_, err := svc.CompleteJob("bk-1", "exp-2", "4821")
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "bookingForbidden", fe.Code)

	bk, err := svc.CompleteJob("bk-1", "exp-1", "4821")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, bk.Status)
	require.NotNil(t, bk.ActualEndTime)
}
