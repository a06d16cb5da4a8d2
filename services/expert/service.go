package expert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"housemate/models"
)

// TimeSlots is the canonical hourly slot grid experts publish against.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// GetProfile retrieves an expert profile.
func (s *DefaultExpertService) GetProfile(expertID string) (*models.ExpertProfile, error) {
	profile, err := s.ExpertRepo.GetByID(expertID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("expert %s not found", expertID)
	}
	return profile, nil
}

// GetProfileByUserID resolves the profile behind a user account.
func (s *DefaultExpertService) GetProfileByUserID(userID string) (*models.ExpertProfile, error) {
	profile, err := s.ExpertRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no expert profile for user %s", userID)
	}
	return profile, nil
}

// UpdateProfile patches the expert's own mutable fields.
func (s *DefaultExpertService) UpdateProfile(expertID string, upd *models.ExpertProfileUpdate) (*models.ExpertProfile, error) {
	if upd.Status != nil {
		return nil, fmt.Errorf("approval status cannot be changed by the expert")
	}
	return s.ExpertRepo.Patch(expertID, upd)
}

// SetOnlineStatus toggles ASAP matchability. Only approved experts can
// go online.
func (s *DefaultExpertService) SetOnlineStatus(expertID string, status models.ExpertOnlineStatus) (*models.ExpertProfile, error) {
	profile, err := s.GetProfile(expertID)
	if err != nil {
		return nil, err
	}
	if status == models.ExpertOnline && profile.Status != models.ExpertApproved {
		return nil, fmt.Errorf("expert must be approved before going online")
	}
	return s.ExpertRepo.Patch(expertID, &models.ExpertProfileUpdate{OnlineStatus: &status})
}

// GetAvailability lists the expert's published dates and slots.
func (s *DefaultExpertService) GetAvailability(expertID string) ([]models.ExpertAvailability, error) {
	return s.AvailabilityRepo.ListByExpert(expertID)
}

// SetAvailability replaces the slot set for one date. Slots must come
// from the canonical grid; the date must be today or later.
func (s *DefaultExpertService) SetAvailability(expertID, date string, slots []string) (*models.ExpertAvailability, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return nil, fmt.Errorf("cannot publish availability for a past date")
	}
	for _, slot := range slots {
		if !validSlot(slot) {
			return nil, fmt.Errorf("unknown time slot %q", slot)
		}
	}

	av := &models.ExpertAvailability{
		ID:              uuid.New().String(),
		ExpertProfileID: expertID,
		Date:            date,
		TimeSlots:       slots,
	}
	if err := s.AvailabilityRepo.Upsert(av); err != nil {
		return nil, err
	}
	return av, nil
}

// UploadIDProof stores an identity document and records its URL on the
// profile.
func (s *DefaultExpertService) UploadIDProof(expertID, localFilePath string) (string, error) {
	if s.StorageSvc == nil {
		return "", fmt.Errorf("document storage is not configured")
	}
	if _, err := s.GetProfile(expertID); err != nil {
		return "", err
	}

	url, err := s.StorageSvc.UploadFile(context.Background(), localFilePath, "id-proofs")
	if err != nil {
		return "", err
	}
	if _, err := s.ExpertRepo.Patch(expertID, &models.ExpertProfileUpdate{IDProofURL: &url}); err != nil {
		return "", err
	}
	return url, nil
}

// ListPending retrieves profiles awaiting admin approval.
func (s *DefaultExpertService) ListPending() ([]models.ExpertProfile, error) {
	return s.ExpertRepo.ListPending()
}

// Approve marks an expert as approved for matching.
func (s *DefaultExpertService) Approve(expertID string) (*models.ExpertProfile, error) {
	status := models.ExpertApproved
	return s.ExpertRepo.Patch(expertID, &models.ExpertProfileUpdate{Status: &status})
}

// RejectExpert declines an expert's application.
func (s *DefaultExpertService) RejectExpert(expertID string) (*models.ExpertProfile, error) {
	status := models.ExpertRejected
	return s.ExpertRepo.Patch(expertID, &models.ExpertProfileUpdate{Status: &status})
}
