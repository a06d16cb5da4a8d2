package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housemate/models"
)

type stubAddressRepo struct {
	addresses map[string]*models.Address
}

func (r *stubAddressRepo) GetByID(id string) (*models.Address, error) {
	return r.addresses[id], nil
}

func (r *stubAddressRepo) ListByCustomer(customerID string) ([]models.Address, error) {
	return nil, nil
}

func (r *stubAddressRepo) Create(addr *models.Address) error { return nil }

func (r *stubAddressRepo) Patch(id string, upd *models.AddressUpdate) (*models.Address, error) {
	return nil, nil
}

func (r *stubAddressRepo) Delete(id string) error { return nil }

func (r *stubAddressRepo) SetDefault(customerID, addressID string) error { return nil }

func draftServiceWithAddresses(addresses map[string]*models.Address) *DefaultDraftService {
	return &DefaultDraftService{
		AddressRepo: &stubAddressRepo{addresses: addresses},
	}
}

func completeDraft() *models.BookingDraft {
	return &models.BookingDraft{
		SessionID:  "sess-1",
		CustomerID: "cust-1",
		Step:       models.StepSelectingService,
		Intent: models.BookingIntent{
			ServiceID:   "svc-1",
			ZoneID:      "zone-1",
			BookingType: models.BookingASAP,
		},
		ExpertID:  "exp-1",
		AddressID: "addr-1",
	}
}

func TestValidateStepForwardGates(t *testing.T) {
	svc := draftServiceWithAddresses(map[string]*models.Address{
		"addr-1": {ID: "addr-1", CustomerID: "cust-1"},
	})

	t.Run("schedule step needs service and zone", func(t *testing.T) {
		draft := completeDraft()
		draft.Intent.ServiceID = ""

		err := svc.validateStep(draft, models.StepSelectingScheduleAndExpert)
		var fe *FlowError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "serviceRequired", fe.Code)

		draft.Intent.ServiceID = "svc-1"
		draft.Intent.ZoneID = ""
		require.ErrorAs(t, svc.validateStep(draft, models.StepSelectingScheduleAndExpert), &fe)
		assert.Equal(t, "serviceRequired", fe.Code)

		draft.Intent.ZoneID = "zone-1"
		assert.NoError(t, svc.validateStep(draft, models.StepSelectingScheduleAndExpert))
	})

	t.Run("address step needs an expert", func(t *testing.T) {
		draft := completeDraft()
		draft.Step = models.StepSelectingScheduleAndExpert
		draft.ExpertID = ""

		err := svc.validateStep(draft, models.StepSelectingAddress)
		var fe *FlowError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "expertRequired", fe.Code)
	})

	t.Run("scheduled bookings also need date and slot", func(t *testing.T) {
		draft := completeDraft()
		draft.Step = models.StepSelectingScheduleAndExpert
		draft.Intent.BookingType = models.BookingScheduled

		err := svc.validateStep(draft, models.StepSelectingAddress)
		var fe *FlowError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "scheduleRequired", fe.Code)

		draft.Intent.Date = "2026-04-01"
		draft.Intent.TimeSlot = "09:00 AM"
		assert.NoError(t, svc.validateStep(draft, models.StepSelectingAddress))
	})

	t.Run("review needs an owned address", func(t *testing.T) {
		draft := completeDraft()
		draft.Step = models.StepSelectingAddress
		draft.AddressID = ""

		err := svc.validateStep(draft, models.StepReviewAndPay)
		var fe *FlowError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "addressRequired", fe.Code)

		draft.AddressID = "addr-unknown"
		require.ErrorAs(t, svc.validateStep(draft, models.StepReviewAndPay), &fe)
		assert.Equal(t, "addressRequired", fe.Code)

		draft.AddressID = "addr-1"
		assert.NoError(t, svc.validateStep(draft, models.StepReviewAndPay))
	})

	t.Run("address owned by someone else is rejected", func(t *testing.T) {
		other := draftServiceWithAddresses(map[string]*models.Address{
			"addr-2": {ID: "addr-2", CustomerID: "cust-other"},
		})
		draft := completeDraft()
		draft.Step = models.StepSelectingAddress
		draft.AddressID = "addr-2"

		err := other.validateStep(draft, models.StepReviewAndPay)
		var fe *FlowError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "addressRequired", fe.Code)
	})
}

func TestValidateStepNoSkipping(t *testing.T) {
	svc := draftServiceWithAddresses(nil)
	draft := completeDraft()

	err := svc.validateStep(draft, models.StepSelectingAddress)
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "invalidStep", fe.Code)

	require.ErrorAs(t, svc.validateStep(draft, models.StepReviewAndPay), &fe)
	assert.Equal(t, "invalidStep", fe.Code)
}

func TestValidateStepBackwardsAlwaysAllowed(t *testing.T) {
	svc := draftServiceWithAddresses(nil)
	draft := completeDraft()
	draft.Step = models.StepReviewAndPay

	// Going back never re-checks the forward gates, even across several
	// steps at once.
	assert.NoError(t, svc.validateStep(draft, models.StepSelectingAddress))
	assert.NoError(t, svc.validateStep(draft, models.StepSelectingService))
}

func TestValidateStepUnknownStep(t *testing.T) {
	svc := draftServiceWithAddresses(nil)
	draft := completeDraft()

	err := svc.validateStep(draft, models.DraftStep("SOMETHING_ELSE"))
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "invalidStep", fe.Code)
}

func TestParseSlotTime(t *testing.T) {
	got, err := parseSlotTime("2026-04-01", "09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 9, 0, 0, 0, time.Local), got)

	got, err = parseSlotTime("2026-04-01", "02:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())

	_, err = parseSlotTime("2026-04-01", "25:00")
	assert.Error(t, err)

	_, err = parseSlotTime("", "")
	assert.Error(t, err)
}

type stubMatchingService struct {
	experts     []models.ExpertProfile
	recoverable error
	err         error
}

func (s *stubMatchingService) MatchExperts(intent models.BookingIntent, categoryName, query string) ([]models.ExpertProfile, error, error) {
	return s.experts, s.recoverable, s.err
}

func scheduledDraft() *models.BookingDraft {
	return &models.BookingDraft{
		SessionID:  "sess-1",
		CustomerID: "cust-1",
		Step:       models.StepSelectingScheduleAndExpert,
		Intent: models.BookingIntent{
			ZoneID:      "zone-1",
			BookingType: models.BookingScheduled,
			Date:        "2026-04-01",
			TimeSlot:    "09:00 AM",
		},
		ExpertID: "exp-1",
	}
}

func TestBuildViewSurfacesRecoverableMatchFailure(t *testing.T) {
	svc := &DefaultDraftService{
		MatchingSvc: &stubMatchingService{
			experts:     []models.ExpertProfile{{ID: "exp-1"}, {ID: "exp-2"}},
			recoverable: NewMatchError("availability could not be verified for 2026-04-01"),
		},
	}

	view, err := svc.buildView(scheduledDraft(), "", "")
	require.NoError(t, err)
	// The chosen expert cannot be trusted against an unverified index:
	// the selection is dropped and the view carries the reason so the
	// client can offer a retry.
	assert.Empty(t, view.Draft.ExpertID)
	assert.Contains(t, view.MatchWarning, "availability could not be verified")
	assert.Len(t, view.EligibleExperts, 2)
}

func TestBuildViewKeepsExpertWhenMatchingSucceeds(t *testing.T) {
	svc := &DefaultDraftService{
		MatchingSvc: &stubMatchingService{
			experts: []models.ExpertProfile{{ID: "exp-1"}, {ID: "exp-2"}},
		},
	}

	view, err := svc.buildView(scheduledDraft(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "exp-1", view.Draft.ExpertID)
	assert.Empty(t, view.MatchWarning)
}

func TestBuildViewClearsStaleExpertWithoutWarning(t *testing.T) {
	svc := &DefaultDraftService{
		MatchingSvc: &stubMatchingService{
			experts: []models.ExpertProfile{{ID: "exp-2"}},
		},
	}

	view, err := svc.buildView(scheduledDraft(), "", "")
	require.NoError(t, err)
	// No longer eligible is a normal outcome, not a failure.
	assert.Empty(t, view.Draft.ExpertID)
	assert.Empty(t, view.MatchWarning)
}

func TestBuildViewPropagatesHardMatchError(t *testing.T) {
	svc := &DefaultDraftService{
		MatchingSvc: &stubMatchingService{err: NewMatchError("failed to load expert pool")},
	}

	_, err := svc.buildView(scheduledDraft(), "", "")
	require.Error(t, err)
	var me *MatchError
	assert.ErrorAs(t, err, &me)
}

func TestExpertInList(t *testing.T) {
	experts := []models.ExpertProfile{{ID: "exp-1"}, {ID: "exp-2"}}
	assert.True(t, expertInList(experts, "exp-2"))
	assert.False(t, expertInList(experts, "exp-3"))
	assert.False(t, expertInList(nil, "exp-1"))
}
