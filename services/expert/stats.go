package expert

import (
	"time"

	"housemate/models"
)

// countsTowardEarnings reports whether a booking's quoted amount is
// money the expert has earned or will earn: it was paid for and not
// cancelled or declined afterwards.
func countsTowardEarnings(status models.BookingStatus) bool {
	switch status {
	case models.BookingPending, models.BookingConfirmed,
		models.BookingInProgress, models.BookingCompleted:
		return true
	default:
		return false
	}
}

// jobDate is the day a booking occupies on the expert's calendar: the
// scheduled start for scheduled jobs, creation time for ASAP jobs.
func jobDate(bk *models.Booking) time.Time {
	if bk.ScheduledStartTime != nil {
		return *bk.ScheduledStartTime
	}
	return bk.CreatedAt
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfWeek returns midnight Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	y, m, d := t.AddDate(0, 0, -(weekday - 1)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ComputeStats summarizes an expert's bookings as of now. Pure so the
// dashboard numbers are easy to pin down in tests.
func ComputeStats(bookings []models.Booking, rating float64, now time.Time) models.ExpertStats {
	stats := models.ExpertStats{Rating: rating}
	weekStart := startOfWeek(now)

	for i := range bookings {
		bk := &bookings[i]
		if !countsTowardEarnings(bk.Status) {
			continue
		}
		stats.TotalEarnings += bk.QuotedAmount

		when := jobDate(bk)
		if sameDay(when, now) {
			stats.TodayJobs++
		}
		if !when.Before(weekStart) && when.Before(weekStart.AddDate(0, 0, 7)) {
			stats.ThisWeekJobs++
		}
	}
	return stats
}

// Stats summarizes the expert's jobs and earnings.
func (s *DefaultExpertService) Stats(expertID string) (*models.ExpertStats, error) {
	profile, err := s.GetProfile(expertID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.ListByExpert(expertID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(bookings, profile.Rating, time.Now())
	return &stats, nil
}
