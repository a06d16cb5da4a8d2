package booking

import (
	"strings"

	"go.uber.org/zap"

	expertRepo "housemate/database/repository/expert"
	"housemate/models"
	"housemate/utils"
)

// The filter pipeline is stable: each stage keeps the pool's original
// relative order and only narrows it. Changing any intent input re-runs
// the whole pipeline from the original pool.

// FilterByZone keeps experts who serve the given zone. An empty zoneID
// applies no filter.
func FilterByZone(experts []models.ExpertProfile, zoneID string) []models.ExpertProfile {
	if zoneID == "" {
		return experts
	}
	out := make([]models.ExpertProfile, 0, len(experts))
	for _, e := range experts {
		if e.ServesZone(zoneID) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategory keeps experts with a skill that contains the
// category name, case-insensitive. An empty category applies no filter.
func FilterByCategory(experts []models.ExpertProfile, categoryName string) []models.ExpertProfile {
	if categoryName == "" {
		return experts
	}
	needle := strings.ToLower(categoryName)
	out := make([]models.ExpertProfile, 0, len(experts))
	for _, e := range experts {
		for _, skill := range e.Skills {
			if strings.Contains(strings.ToLower(skill), needle) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// FilterByAvailability narrows the pool by the intent's schedule. ASAP
// keeps only ONLINE experts. SCHEDULED with both date and slot chosen
// keeps experts whose published record for that date contains the slot;
// before both are chosen the filter passes everyone, so the customer
// can browse experts while still picking a time.
func FilterByAvailability(experts []models.ExpertProfile, intent models.BookingIntent, availabilityByExpert map[string]models.ExpertAvailability) []models.ExpertProfile {
	switch intent.BookingType {
	case models.BookingASAP:
		out := make([]models.ExpertProfile, 0, len(experts))
		for _, e := range experts {
			if e.OnlineStatus == models.ExpertOnline {
				out = append(out, e)
			}
		}
		return out
	case models.BookingScheduled:
		if intent.Date == "" || intent.TimeSlot == "" {
			return experts
		}
		out := make([]models.ExpertProfile, 0, len(experts))
		for _, e := range experts {
			av, ok := availabilityByExpert[e.ID]
			if ok && av.HasSlot(intent.TimeSlot) {
				out = append(out, e)
			}
		}
		return out
	default:
		return experts
	}
}

// FilterBySearchText keeps experts whose display name contains the
// query, case-insensitive. An empty query applies no filter.
func FilterBySearchText(experts []models.ExpertProfile, query string) []models.ExpertProfile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return experts
	}
	out := make([]models.ExpertProfile, 0, len(experts))
	for _, e := range experts {
		if strings.Contains(strings.ToLower(e.FullName), q) {
			out = append(out, e)
		}
	}
	return out
}

// GetEligibleExperts runs the composed zone, category, availability and
// search pipeline over a pool snapshot.
func GetEligibleExperts(pool []models.ExpertProfile, intent models.BookingIntent, categoryName string, availabilityByExpert map[string]models.ExpertAvailability, query string) []models.ExpertProfile {
	experts := FilterByZone(pool, intent.ZoneID)
	experts = FilterByCategory(experts, categoryName)
	experts = FilterByAvailability(experts, intent, availabilityByExpert)
	experts = FilterBySearchText(experts, query)
	return experts
}

// MatchingService loads the expert pool and availability index and runs
// the filter pipeline.
type MatchingService interface {
	// MatchExperts returns the eligible experts for an intent. The
	// recoverable flag is true when the availability index could not be
	// loaded for a scheduled intent; callers should clear any selected
	// expert and retry rather than book against unverified availability.
	MatchExperts(intent models.BookingIntent, categoryName, query string) (experts []models.ExpertProfile, recoverable error, err error)
}

// DefaultMatchingService implements MatchingService.
type DefaultMatchingService struct {
	ExpertRepo       expertRepo.ExpertRepository
	AvailabilityRepo expertRepo.AvailabilityRepository
}

// MatchExperts loads APPROVED experts, builds the per-date availability
// index for scheduled intents and runs the pipeline. An empty result is
// not an error.
func (s *DefaultMatchingService) MatchExperts(intent models.BookingIntent, categoryName, query string) ([]models.ExpertProfile, error, error) {
	pool, err := s.ExpertRepo.ListApproved()
	if err != nil {
		return nil, nil, NewMatchError("failed to load expert pool: " + err.Error())
	}

	var availabilityByExpert map[string]models.ExpertAvailability
	var recoverable error
	if intent.BookingType == models.BookingScheduled && intent.Date != "" && intent.TimeSlot != "" {
		records, avErr := s.AvailabilityRepo.ListByDate(intent.Date)
		if avErr != nil {
			// Availability is unverified; match without the per-date
			// filter and tell the caller to drop any selected expert.
			utils.GetLogger().Warn("availability lookup failed, matching without slot filter",
				zap.String("date", intent.Date), zap.Error(avErr))
			recoverable = NewMatchError("availability could not be verified for " + intent.Date)
			relaxed := intent
			relaxed.Date, relaxed.TimeSlot = "", ""
			return GetEligibleExperts(pool, relaxed, categoryName, nil, query), recoverable, nil
		}
		availabilityByExpert = make(map[string]models.ExpertAvailability, len(records))
		for _, rec := range records {
			availabilityByExpert[rec.ExpertProfileID] = rec
		}
	}

	return GetEligibleExperts(pool, intent, categoryName, availabilityByExpert, query), recoverable, nil
}
