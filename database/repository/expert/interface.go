package expertRepo

import (
	"housemate/models"
)

// ExpertRepository defines methods for expert profile data access.
type ExpertRepository interface {
	GetByID(id string) (*models.ExpertProfile, error)
	// GetByUserID retrieves the profile belonging to a user account.
	GetByUserID(userID string) (*models.ExpertProfile, error)
	// ListApproved retrieves every APPROVED expert profile.
	ListApproved() ([]models.ExpertProfile, error)
	// ListPending retrieves profiles awaiting admin approval.
	ListPending() ([]models.ExpertProfile, error)
	Create(profile *models.ExpertProfile) error
	// Patch applies the non-nil fields of upd and returns the updated profile.
	Patch(id string, upd *models.ExpertProfileUpdate) (*models.ExpertProfile, error)
	// UpdateRating stores a recomputed rating average and job count.
	UpdateRating(id string, rating float64, totalJobs int) error
	Delete(id string) error
}

// AvailabilityRepository defines methods for expert availability data
// access. Records are keyed by (expert, date).
type AvailabilityRepository interface {
	// Get retrieves the record for one expert on one date, or nil when
	// the expert has not published that date.
	Get(expertProfileID, date string) (*models.ExpertAvailability, error)
	// ListByExpert retrieves every published date for an expert.
	ListByExpert(expertProfileID string) ([]models.ExpertAvailability, error)
	// ListByDate retrieves every expert's record for one date.
	ListByDate(date string) ([]models.ExpertAvailability, error)
	// Upsert replaces the slot set for (expert, date).
	Upsert(av *models.ExpertAvailability) error
	// RemoveSlot removes one slot from (expert, date), used when a
	// scheduled booking is confirmed.
	RemoveSlot(expertProfileID, date, slot string) error
}
