package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housemate/models"
)

func expertPool() []models.ExpertProfile {
	return []models.ExpertProfile{
		{
			ID:           "exp-1",
			FullName:     "Ravi Kumar",
			Skills:       []string{"Deep Cleaning", "Sofa Cleaning"},
			ZoneIDs:      []string{"zone-south"},
			Status:       models.ExpertApproved,
			OnlineStatus: models.ExpertOnline,
		},
		{
			ID:           "exp-2",
			FullName:     "Sunita Devi",
			Skills:       []string{"Plumbing"},
			ZoneIDs:      []string{"zone-south", "zone-north"},
			Status:       models.ExpertApproved,
			OnlineStatus: models.ExpertOffline,
		},
		{
			ID:           "exp-3",
			FullName:     "Arjun Ravindran",
			Skills:       []string{"cleaning"},
			ZoneIDs:      []string{"zone-north"},
			Status:       models.ExpertApproved,
			OnlineStatus: models.ExpertOnline,
		},
	}
}

func ids(experts []models.ExpertProfile) []string {
	out := make([]string, 0, len(experts))
	for _, e := range experts {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterByZone(t *testing.T) {
	pool := expertPool()

	assert.Equal(t, []string{"exp-1", "exp-2"}, ids(FilterByZone(pool, "zone-south")))
	assert.Equal(t, []string{"exp-2", "exp-3"}, ids(FilterByZone(pool, "zone-north")))
	assert.Empty(t, FilterByZone(pool, "zone-east"))

	// No zone chosen yet: everyone passes.
	assert.Len(t, FilterByZone(pool, ""), 3)
}

func TestFilterByCategory(t *testing.T) {
	pool := expertPool()

	// Case-insensitive substring against each skill.
	assert.Equal(t, []string{"exp-1", "exp-3"}, ids(FilterByCategory(pool, "Cleaning")))
	assert.Equal(t, []string{"exp-1", "exp-3"}, ids(FilterByCategory(pool, "cleaning")))
	assert.Equal(t, []string{"exp-2"}, ids(FilterByCategory(pool, "plumb")))
	assert.Empty(t, FilterByCategory(pool, "Electrical"))
	assert.Len(t, FilterByCategory(pool, ""), 3)
}

func TestFilterByAvailabilityASAP(t *testing.T) {
	pool := expertPool()
	intent := models.BookingIntent{BookingType: models.BookingASAP}

	got := FilterByAvailability(pool, intent, nil)
	assert.Equal(t, []string{"exp-1", "exp-3"}, ids(got))
}

func TestFilterByAvailabilityScheduled(t *testing.T) {
	pool := expertPool()
	index := map[string]models.ExpertAvailability{
		"exp-1": {ExpertProfileID: "exp-1", Date: "2026-04-01", TimeSlots: []string{"09:00 AM", "10:00 AM"}},
		"exp-2": {ExpertProfileID: "exp-2", Date: "2026-04-01", TimeSlots: []string{"02:00 PM"}},
	}

	intent := models.BookingIntent{
		BookingType: models.BookingScheduled,
		Date:        "2026-04-01",
		TimeSlot:    "09:00 AM",
	}
	got := FilterByAvailability(pool, intent, index)
	// exp-2 has no such slot and exp-3 has no record for the date.
	assert.Equal(t, []string{"exp-1"}, ids(got))

	intent.TimeSlot = "02:00 PM"
	assert.Equal(t, []string{"exp-2"}, ids(FilterByAvailability(pool, intent, index)))
}

func TestFilterByAvailabilityScheduledBeforeTimeChosen(t *testing.T) {
	pool := expertPool()

	// Browsing experts before picking a date and slot passes everyone,
	// offline experts included.
	intent := models.BookingIntent{BookingType: models.BookingScheduled}
	assert.Len(t, FilterByAvailability(pool, intent, nil), 3)

	intent.Date = "2026-04-01"
	assert.Len(t, FilterByAvailability(pool, intent, nil), 3)
}

func TestFilterBySearchText(t *testing.T) {
	pool := expertPool()

	assert.Equal(t, []string{"exp-1", "exp-3"}, ids(FilterBySearchText(pool, "rav")))
	assert.Equal(t, []string{"exp-2"}, ids(FilterBySearchText(pool, "SUNITA")))
	assert.Empty(t, FilterBySearchText(pool, "nobody"))
	assert.Len(t, FilterBySearchText(pool, "   "), 3)
}

func TestGetEligibleExpertsPipeline(t *testing.T) {
	pool := expertPool()
	intent := models.BookingIntent{
		ZoneID:      "zone-south",
		BookingType: models.BookingASAP,
	}

	got := GetEligibleExperts(pool, intent, "cleaning", nil, "")
	assert.Equal(t, []string{"exp-1"}, ids(got))

	// Search narrows further.
	assert.Empty(t, GetEligibleExperts(pool, intent, "cleaning", nil, "sunita"))
}

func TestGetEligibleExpertsKeepsPoolOrder(t *testing.T) {
	pool := expertPool()
	intent := models.BookingIntent{BookingType: models.BookingScheduled}

	got := GetEligibleExperts(pool, intent, "", nil, "")
	assert.Equal(t, []string{"exp-1", "exp-2", "exp-3"}, ids(got))
}

// stubPoolRepo serves a fixed approved pool to the matching service.
type stubPoolRepo struct {
	pool []models.ExpertProfile
	err  error
}

func (r *stubPoolRepo) GetByID(id string) (*models.ExpertProfile, error) { return nil, nil }

func (r *stubPoolRepo) GetByUserID(userID string) (*models.ExpertProfile, error) {
	return nil, nil
}

func (r *stubPoolRepo) ListApproved() ([]models.ExpertProfile, error) {
	return r.pool, r.err
}

func (r *stubPoolRepo) ListPending() ([]models.ExpertProfile, error) { return nil, nil }

func (r *stubPoolRepo) Create(profile *models.ExpertProfile) error { return nil }

func (r *stubPoolRepo) Patch(id string, upd *models.ExpertProfileUpdate) (*models.ExpertProfile, error) {
	return nil, nil
}

func (r *stubPoolRepo) UpdateRating(id string, rating float64, totalJobs int) error { return nil }

func (r *stubPoolRepo) Delete(id string) error { return nil }

// stubDateIndexRepo serves per-date availability records, or fails.
type stubDateIndexRepo struct {
	records []models.ExpertAvailability
	err     error
}

func (r *stubDateIndexRepo) Get(expertProfileID, date string) (*models.ExpertAvailability, error) {
	return nil, nil
}

func (r *stubDateIndexRepo) ListByExpert(expertProfileID string) ([]models.ExpertAvailability, error) {
	return nil, nil
}

func (r *stubDateIndexRepo) ListByDate(date string) ([]models.ExpertAvailability, error) {
	return r.records, r.err
}

func (r *stubDateIndexRepo) Upsert(av *models.ExpertAvailability) error { return nil }

func (r *stubDateIndexRepo) RemoveSlot(expertProfileID, date, slot string) error { return nil }

func TestMatchExpertsScheduled(t *testing.T) {
	svc := &DefaultMatchingService{
		ExpertRepo: &stubPoolRepo{pool: expertPool()},
		AvailabilityRepo: &stubDateIndexRepo{records: []models.ExpertAvailability{
			{ExpertProfileID: "exp-1", Date: "2026-04-01", TimeSlots: []string{"09:00 AM"}},
		}},
	}
	intent := models.BookingIntent{
		BookingType: models.BookingScheduled,
		Date:        "2026-04-01",
		TimeSlot:    "09:00 AM",
	}

	experts, recoverable, err := svc.MatchExperts(intent, "", "")
	require.NoError(t, err)
	assert.Nil(t, recoverable)
	assert.Equal(t, []string{"exp-1"}, ids(experts))
}

func TestMatchExpertsAvailabilityFailureIsRecoverable(t *testing.T) {
	svc := &DefaultMatchingService{
		ExpertRepo:       &stubPoolRepo{pool: expertPool()},
		AvailabilityRepo: &stubDateIndexRepo{err: fmt.Errorf("index read timed out")},
	}
	intent := models.BookingIntent{
		BookingType: models.BookingScheduled,
		Date:        "2026-04-01",
		TimeSlot:    "09:00 AM",
	}

	// The slot filter is dropped and the full pool comes back. The
	// failure is recoverable, not hard.
	experts, recoverable, err := svc.MatchExperts(intent, "", "")
	require.NoError(t, err)
	require.Error(t, recoverable)
	var me *MatchError
	require.ErrorAs(t, recoverable, &me)
	assert.Equal(t, []string{"exp-1", "exp-2", "exp-3"}, ids(experts))
}

func TestMatchExpertsPoolLoadFailureIsHard(t *testing.T) {
	svc := &DefaultMatchingService{
		ExpertRepo:       &stubPoolRepo{err: fmt.Errorf("connection refused")},
		AvailabilityRepo: &stubDateIndexRepo{},
	}

	_, recoverable, err := svc.MatchExperts(models.BookingIntent{BookingType: models.BookingASAP}, "", "")
	assert.Nil(t, recoverable)
	var me *MatchError
	require.ErrorAs(t, err, &me)
}
