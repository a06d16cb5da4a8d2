package expert

import (
	bookingRepo "housemate/database/repository/booking"
	expertRepo "housemate/database/repository/expert"
	"housemate/models"
	"housemate/services/storage"
)

// ExpertService manages the expert side of the marketplace: profile,
// published availability, online status and the earnings dashboard.
type ExpertService interface {
	GetProfile(expertID string) (*models.ExpertProfile, error)
	// GetProfileByUserID resolves the profile behind an authenticated
	// user account.
	GetProfileByUserID(userID string) (*models.ExpertProfile, error)
	// UpdateProfile patches the expert's own mutable fields. Approval
	// status changes are rejected here; they go through Approve/Reject.
	UpdateProfile(expertID string, upd *models.ExpertProfileUpdate) (*models.ExpertProfile, error)
	// SetOnlineStatus toggles ASAP matchability.
	SetOnlineStatus(expertID string, status models.ExpertOnlineStatus) (*models.ExpertProfile, error)

	// GetAvailability lists the expert's published dates and slots.
	GetAvailability(expertID string) ([]models.ExpertAvailability, error)
	// SetAvailability replaces the slot set for one date.
	SetAvailability(expertID, date string, slots []string) (*models.ExpertAvailability, error)

	// Stats summarizes the expert's jobs and earnings.
	Stats(expertID string) (*models.ExpertStats, error)

	// UploadIDProof stores an identity document and records its URL on
	// the profile.
	UploadIDProof(expertID, localFilePath string) (string, error)

	// ListPending and Approve/RejectExpert serve the admin approval
	// workflow.
	ListPending() ([]models.ExpertProfile, error)
	Approve(expertID string) (*models.ExpertProfile, error)
	RejectExpert(expertID string) (*models.ExpertProfile, error)
}

// DefaultExpertService implements ExpertService.
type DefaultExpertService struct {
	ExpertRepo       expertRepo.ExpertRepository
	AvailabilityRepo expertRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	StorageSvc       storage.StorageService
}
