package expert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housemate/models"
)

type stubExpertRepo struct {
	profiles map[string]*models.ExpertProfile
	patched  *models.ExpertProfileUpdate
}

func (r *stubExpertRepo) GetByID(id string) (*models.ExpertProfile, error) {
	return r.profiles[id], nil
}

func (r *stubExpertRepo) GetByUserID(userID string) (*models.ExpertProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubExpertRepo) ListApproved() ([]models.ExpertProfile, error) { return nil, nil }
func (r *stubExpertRepo) ListPending() ([]models.ExpertProfile, error)  { return nil, nil }
func (r *stubExpertRepo) Create(profile *models.ExpertProfile) error    { return nil }

func (r *stubExpertRepo) Patch(id string, upd *models.ExpertProfileUpdate) (*models.ExpertProfile, error) {
	r.patched = upd
	return r.profiles[id], nil
}

func (r *stubExpertRepo) UpdateRating(id string, rating float64, totalJobs int) error { return nil }
func (r *stubExpertRepo) Delete(id string) error                                      { return nil }

type stubAvailabilityRepo struct {
	upserted *models.ExpertAvailability
}

func (r *stubAvailabilityRepo) Get(expertProfileID, date string) (*models.ExpertAvailability, error) {
	return nil, nil
}

func (r *stubAvailabilityRepo) ListByExpert(expertProfileID string) ([]models.ExpertAvailability, error) {
	return nil, nil
}

func (r *stubAvailabilityRepo) ListByDate(date string) ([]models.ExpertAvailability, error) {
	return nil, nil
}

func (r *stubAvailabilityRepo) Upsert(av *models.ExpertAvailability) error {
	r.upserted = av
	return nil
}

func (r *stubAvailabilityRepo) RemoveSlot(expertProfileID, date, slot string) error { return nil }

func TestValidSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		assert.True(t, validSlot(slot), slot)
	}
	assert.False(t, validSlot("08:00 AM"))
	assert.False(t, validSlot("09:00am"))
	assert.False(t, validSlot(""))
}

func TestSetOnlineStatusRequiresApproval(t *testing.T) {
	repo := &stubExpertRepo{profiles: map[string]*models.ExpertProfile{
		"exp-1": {ID: "exp-1", Status: models.ExpertPending},
		"exp-2": {ID: "exp-2", Status: models.ExpertApproved},
	}}
	svc := &DefaultExpertService{ExpertRepo: repo}

	_, err := svc.SetOnlineStatus("exp-1", models.ExpertOnline)
	assert.Error(t, err)

	// Going offline is allowed regardless of approval.
	_, err = svc.SetOnlineStatus("exp-1", models.ExpertOffline)
	assert.NoError(t, err)

	_, err = svc.SetOnlineStatus("exp-2", models.ExpertOnline)
	assert.NoError(t, err)
}

func TestUpdateProfileRejectsStatusChange(t *testing.T) {
	repo := &stubExpertRepo{profiles: map[string]*models.ExpertProfile{
		"exp-1": {ID: "exp-1", Status: models.ExpertApproved},
	}}
	svc := &DefaultExpertService{ExpertRepo: repo}

	status := models.ExpertApproved
	_, err := svc.UpdateProfile("exp-1", &models.ExpertProfileUpdate{Status: &status})
	assert.Error(t, err)
	assert.Nil(t, repo.patched)
}

func TestSetAvailability(t *testing.T) {
	avRepo := &stubAvailabilityRepo{}
	svc := &DefaultExpertService{AvailabilityRepo: avRepo}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	av, err := svc.SetAvailability("exp-1", tomorrow, []string{"09:00 AM", "02:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, "exp-1", av.ExpertProfileID)
	assert.Equal(t, tomorrow, av.Date)
	assert.Equal(t, []string{"09:00 AM", "02:00 PM"}, av.TimeSlots)
	require.NotNil(t, avRepo.upserted)
	assert.Equal(t, av, avRepo.upserted)
}

func TestSetAvailabilityToday(t *testing.T) {
	svc := &DefaultExpertService{AvailabilityRepo: &stubAvailabilityRepo{}}
	today := time.Now().Format("2006-01-02")

	_, err := svc.SetAvailability("exp-1", today, []string{"05:00 PM"})
	assert.NoError(t, err)
}

func TestSetAvailabilityRejections(t *testing.T) {
	svc := &DefaultExpertService{AvailabilityRepo: &stubAvailabilityRepo{}}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	_, err := svc.SetAvailability("exp-1", "not-a-date", []string{"09:00 AM"})
	assert.Error(t, err)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_, err = svc.SetAvailability("exp-1", yesterday, []string{"09:00 AM"})
	assert.Error(t, err)

	_, err = svc.SetAvailability("exp-1", tomorrow, []string{"07:00 AM"})
	assert.Error(t, err)
}
