package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"housemate/models"
	"housemate/utils"
)

// draftKey namespaces draft sessions in the cache.
func draftKey(sessionID string) string {
	return "draft:" + sessionID
}

// stepOrder positions each draft step in the forward flow.
var stepOrder = map[models.DraftStep]int{
	models.StepSelectingService:           0,
	models.StepSelectingScheduleAndExpert: 1,
	models.StepSelectingAddress:           2,
	models.StepReviewAndPay:               3,
}

// StartDraft opens a new draft session for a customer.
func (s *DefaultDraftService) StartDraft(customerID string) (*models.DraftView, error) {
	draft := models.BookingDraft{
		SessionID:  uuid.New().String(),
		CustomerID: customerID,
		Step:       models.StepSelectingService,
		Intent:     models.BookingIntent{BookingType: models.BookingASAP},
		CreatedAt:  time.Now(),
	}
	if err := s.saveDraft(&draft); err != nil {
		return nil, err
	}
	return s.buildView(&draft, "", "")
}

// GetDraft re-derives the view for an existing session.
func (s *DefaultDraftService) GetDraft(sessionID, customerID string) (*models.DraftView, error) {
	draft, err := s.loadDraft(sessionID, customerID)
	if err != nil {
		return nil, err
	}
	return s.buildView(draft, "", "")
}

// UpdateDraft applies one round of user input and recomputes everything
// derived from the draft: the quote, the eligible-expert list and the
// coupon's validity. The last write to any field wins.
func (s *DefaultDraftService) UpdateDraft(sessionID, customerID string, upd *models.DraftUpdate) (*models.DraftView, error) {
	draft, err := s.loadDraft(sessionID, customerID)
	if err != nil {
		return nil, err
	}

	if upd.ServiceID != nil {
		draft.Intent.ServiceID = *upd.ServiceID
		draft.Intent.AddonIDs = nil
	}
	if upd.AddonIDs != nil {
		draft.Intent.AddonIDs = upd.AddonIDs
	}
	if upd.ZoneID != nil {
		draft.Intent.ZoneID = *upd.ZoneID
	}
	if upd.BookingType != nil {
		draft.Intent.BookingType = *upd.BookingType
		if *upd.BookingType == models.BookingASAP {
			draft.Intent.Date, draft.Intent.TimeSlot = "", ""
		}
	}
	if upd.Date != nil {
		draft.Intent.Date = *upd.Date
	}
	if upd.TimeSlot != nil {
		draft.Intent.TimeSlot = *upd.TimeSlot
	}
	if upd.ExpertID != nil {
		draft.ExpertID = *upd.ExpertID
	}
	if upd.AddressID != nil {
		draft.AddressID = *upd.AddressID
	}
	if upd.CouponCode != nil {
		draft.CouponCode = NormalizeCouponCode(*upd.CouponCode)
	}
	if upd.Step != nil {
		if err := s.validateStep(draft, *upd.Step); err != nil {
			return nil, err
		}
		draft.Step = *upd.Step
	}

	search := ""
	if upd.SearchText != nil {
		search = *upd.SearchText
	}

	view, err := s.buildView(draft, search, "")
	if err != nil {
		return nil, err
	}
	if err := s.saveDraft(draft); err != nil {
		return nil, err
	}
	return view, nil
}

// ConfirmDraft turns a REVIEW_AND_PAY draft into a PENDING_PAYMENT
// booking, schedules its unpaid expiry and discards the session.
func (s *DefaultDraftService) ConfirmDraft(sessionID, customerID string) (*models.Booking, error) {
	draft, err := s.loadDraft(sessionID, customerID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReviewAndPay {
		return nil, NewFlowError("draftNotReady", "draft must reach review before confirming")
	}

	svc, err := s.CatalogRepo.GetService(draft.Intent.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, NewFlowError("serviceMissing", "draft has no valid service selected")
	}
	if draft.ExpertID == "" || draft.AddressID == "" {
		return nil, NewFlowError("draftIncomplete", "expert and address must be selected before confirming")
	}

	// Re-run matching so a stale expert choice cannot slip through.
	view, err := s.buildView(draft, "", "")
	if err != nil {
		return nil, err
	}
	if !expertInList(view.EligibleExperts, draft.ExpertID) {
		return nil, NewFlowError("expertUnavailable", "selected expert is no longer available")
	}

	otp, err := utils.GenerateJobOTP()
	if err != nil {
		return nil, err
	}

	bk := models.Booking{
		ID:              uuid.New().String(),
		CustomerID:      draft.CustomerID,
		ExpertID:        draft.ExpertID,
		ZoneID:          draft.Intent.ZoneID,
		ServiceID:       draft.Intent.ServiceID,
		AddressID:       draft.AddressID,
		Status:          models.BookingPendingPayment,
		BookingType:     draft.Intent.BookingType,
		DurationMinutes: TotalDurationMinutes(svc, draft.Intent.AddonIDs),
		AddonIDs:        draft.Intent.AddonIDs,
		QuotedAmount:    view.Quote.TotalAmount,
		Currency:        svc.Currency,
		OTP:             otp,
	}
	if view.CouponError == "" {
		bk.CouponCode = draft.CouponCode
	}
	switch draft.Intent.BookingType {
	case models.BookingASAP:
		eta := s.ASAPDefaultETA
		bk.ETAMinutes = &eta
	case models.BookingScheduled:
		start, perr := parseSlotTime(draft.Intent.Date, draft.Intent.TimeSlot)
		if perr != nil {
			return nil, NewFlowError("invalidSchedule", perr.Error())
		}
		bk.ScheduledStartTime = &start
	}

	if err := s.BookingRepo.Create(&bk); err != nil {
		return nil, err
	}
	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleExpiry(bk.ID, s.PaymentTTL); err != nil {
			utils.GetLogger().Warn("failed to schedule booking expiry: " + err.Error())
		}
	}

	s.discardDraft(sessionID)
	return &bk, nil
}

// CancelDraft discards a session.
func (s *DefaultDraftService) CancelDraft(sessionID, customerID string) error {
	if _, err := s.loadDraft(sessionID, customerID); err != nil {
		return err
	}
	s.discardDraft(sessionID)
	return nil
}

// buildView recomputes every derived field for the draft: the coupon's
// validity, the quote and the eligible-expert list. A stale selected
// expert is cleared here.
func (s *DefaultDraftService) buildView(draft *models.BookingDraft, search, categoryOverride string) (*models.DraftView, error) {
	var svc *models.Service
	if draft.Intent.ServiceID != "" {
		loaded, err := s.CatalogRepo.GetService(draft.Intent.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load service: %w", err)
		}
		svc = loaded
	}

	categoryName := categoryOverride
	if categoryName == "" && svc != nil {
		if cat, err := s.CatalogRepo.GetCategory(svc.CategoryID); err == nil && cat != nil {
			categoryName = cat.Name
		}
	}

	subtotal := ComputeBase(svc) + ComputeAddons(svc, draft.Intent.AddonIDs)

	var coupon *models.Coupon
	couponError := ""
	if draft.CouponCode != "" {
		found, err := s.CouponRepo.GetByCode(draft.CouponCode)
		if err != nil {
			return nil, fmt.Errorf("failed to load coupon: %w", err)
		}
		serviceID := ""
		if svc != nil {
			serviceID = svc.ID
		}
		if verr := ValidateCoupon(found, subtotal, draft.Intent.ZoneID, serviceID, time.Now()); verr != nil {
			var ce *CouponError
			if errors.As(verr, &ce) {
				couponError = ce.Message
			} else {
				couponError = verr.Error()
			}
		} else {
			coupon = found
		}
	}

	quote := ComputeQuote(svc, draft.Intent.AddonIDs, coupon)

	experts, recoverable, err := s.MatchingSvc.MatchExperts(draft.Intent, categoryName, search)
	if err != nil {
		return nil, err
	}
	matchWarning := ""
	if recoverable != nil {
		draft.ExpertID = ""
		var me *MatchError
		if errors.As(recoverable, &me) {
			matchWarning = me.Message
		} else {
			matchWarning = recoverable.Error()
		}
	}
	if draft.ExpertID != "" && !expertInList(experts, draft.ExpertID) {
		draft.ExpertID = ""
	}
	draft.DurationMinutes = TotalDurationMinutes(svc, draft.Intent.AddonIDs)

	return &models.DraftView{
		Draft:           *draft,
		Quote:           quote,
		EligibleExperts: experts,
		ExpertCount:     len(experts),
		CouponError:     couponError,
		MatchWarning:    matchWarning,
	}, nil
}

// validateStep enforces the draft state machine: steps move one at a
// time in either direction, and review requires a complete draft.
func (s *DefaultDraftService) validateStep(draft *models.BookingDraft, next models.DraftStep) error {
	cur, ok := stepOrder[draft.Step]
	nxt, ok2 := stepOrder[next]
	if !ok || !ok2 {
		return NewFlowError("invalidStep", "unknown draft step")
	}
	if nxt > cur+1 {
		return NewFlowError("invalidStep", "draft steps cannot be skipped")
	}
	if nxt > cur {
		switch next {
		case models.StepSelectingScheduleAndExpert:
			if draft.Intent.ServiceID == "" || draft.Intent.ZoneID == "" {
				return NewFlowError("serviceRequired", "pick a service and zone first")
			}
		case models.StepSelectingAddress:
			if draft.ExpertID == "" {
				return NewFlowError("expertRequired", "pick an expert first")
			}
			if draft.Intent.BookingType == models.BookingScheduled &&
				(draft.Intent.Date == "" || draft.Intent.TimeSlot == "") {
				return NewFlowError("scheduleRequired", "pick a date and time slot first")
			}
		case models.StepReviewAndPay:
			if draft.AddressID == "" {
				return NewFlowError("addressRequired", "pick an address first")
			}
			addr, err := s.AddressRepo.GetByID(draft.AddressID)
			if err != nil {
				return err
			}
			if addr == nil || addr.CustomerID != draft.CustomerID {
				return NewFlowError("addressRequired", "address does not belong to this customer")
			}
		}
	}
	return nil
}

func (s *DefaultDraftService) saveDraft(draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	ctx := context.Background()
	cache := utils.GetDraftCacheClient()
	if err := cache.Set(ctx, draftKey(draft.SessionID), data, s.DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *DefaultDraftService) loadDraft(sessionID, customerID string) (*models.BookingDraft, error) {
	ctx := context.Background()
	cache := utils.GetDraftCacheClient()
	data, err := cache.Get(ctx, draftKey(sessionID)).Result()
	if err != nil {
		return nil, NewFlowError("draftNotFound", "booking draft not found or expired")
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	if draft.CustomerID != customerID {
		return nil, NewFlowError("draftForbidden", "draft belongs to another customer")
	}
	return &draft, nil
}

func (s *DefaultDraftService) discardDraft(sessionID string) {
	ctx := context.Background()
	if err := utils.GetDraftCacheClient().Del(ctx, draftKey(sessionID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to discard booking draft: " + err.Error())
	}
}

func expertInList(experts []models.ExpertProfile, id string) bool {
	for _, e := range experts {
		if e.ID == id {
			return true
		}
	}
	return false
}

// parseSlotTime combines a YYYY-MM-DD date and a slot label such as
// "09:00 AM" into a local timestamp.
func parseSlotTime(date, slot string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+slot, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date or time slot: %w", err)
	}
	return t, nil
}
