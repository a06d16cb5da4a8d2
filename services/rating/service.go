package rating

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "housemate/database/repository/booking"
	expertRepo "housemate/database/repository/expert"
	recordsRepo "housemate/database/repository/records"
	"housemate/models"
	"housemate/utils"
)

// RatingService records customer reviews and keeps the expert's rating
// aggregate in step.
type RatingService interface {
	// Create stores a rating for a COMPLETED booking the customer owns
	// and recomputes the expert's average.
	Create(customerID string, req *models.CreateRatingRequest) (*models.Rating, error)
	ListByExpert(expertID string) ([]models.Rating, error)
}

// DefaultRatingService implements RatingService.
type DefaultRatingService struct {
	RatingRepo  recordsRepo.RatingRepository
	BookingRepo bookingRepo.BookingRepository
	ExpertRepo  expertRepo.ExpertRepository
}

// Create stores a rating and recomputes the expert's aggregate.
func (s *DefaultRatingService) Create(customerID string, req *models.CreateRatingRequest) (*models.Rating, error) {
	bk, err := s.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}
	if bk.CustomerID != customerID {
		return nil, fmt.Errorf("booking belongs to another customer")
	}
	if bk.Status != models.BookingCompleted {
		return nil, fmt.Errorf("only completed bookings can be rated")
	}

	rating := &models.Rating{
		ID:         uuid.New().String(),
		BookingID:  bk.ID,
		CustomerID: customerID,
		ExpertID:   bk.ExpertID,
		Rating:     req.Rating,
		Feedback:   req.Feedback,
	}
	if err := s.RatingRepo.Create(rating); err != nil {
		return nil, err
	}

	if err := s.recomputeAggregate(bk.ExpertID); err != nil {
		utils.GetLogger().Warn("failed to recompute expert rating",
			zap.String("expertId", bk.ExpertID), zap.Error(err))
	}
	return rating, nil
}

// ListByExpert retrieves every rating left for an expert.
func (s *DefaultRatingService) ListByExpert(expertID string) ([]models.Rating, error) {
	return s.RatingRepo.ListByExpert(expertID)
}

// recomputeAggregate rereads all of the expert's ratings and completed
// jobs and stores the fresh average and count on the profile.
func (s *DefaultRatingService) recomputeAggregate(expertID string) error {
	ratings, err := s.RatingRepo.ListByExpert(expertID)
	if err != nil {
		return err
	}
	completed, err := s.BookingRepo.ListByExpert(expertID, models.BookingCompleted)
	if err != nil {
		return err
	}
	avg := AverageRating(ratings)
	return s.ExpertRepo.UpdateRating(expertID, avg, len(completed))
}

// AverageRating averages a rating set; an empty set averages to zero.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}
