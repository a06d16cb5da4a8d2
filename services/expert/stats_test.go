package expert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"housemate/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestCountsTowardEarnings(t *testing.T) {
	earning := []models.BookingStatus{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingInProgress,
		models.BookingCompleted,
	}
	for _, st := range earning {
		assert.True(t, countsTowardEarnings(st), string(st))
	}

	notEarning := []models.BookingStatus{
		models.BookingPendingPayment,
		models.BookingRejected,
		models.BookingCancelled,
		models.BookingCancelledByCustomer,
	}
	for _, st := range notEarning {
		assert.False(t, countsTowardEarnings(st), string(st))
	}
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2026-03-18.
	wed := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), startOfWeek(wed))

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2026, 3, 22, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), startOfWeek(sun))

	// Monday is its own week start.
	mon := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, startOfWeek(mon))
}

func TestComputeStats(t *testing.T) {
	// Wednesday 2026-03-18; week runs Mon 16th through Sun 22nd.
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		// Scheduled today, confirmed: counts everywhere.
		{
			Status:             models.BookingConfirmed,
			QuotedAmount:       1500,
			ScheduledStartTime: timePtr(time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)),
		},
		// ASAP created today, in progress: job date falls back to creation.
		{
			Status:       models.BookingInProgress,
			QuotedAmount: 800,
			CreatedAt:    time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC),
		},
		// Completed Monday this week.
		{
			Status:             models.BookingCompleted,
			QuotedAmount:       1000,
			ScheduledStartTime: timePtr(time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC)),
		},
		// Completed last week: earnings only.
		{
			Status:             models.BookingCompleted,
			QuotedAmount:       700,
			ScheduledStartTime: timePtr(time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)),
		},
		// Awaiting payment: ignored entirely.
		{
			Status:             models.BookingPendingPayment,
			QuotedAmount:       5000,
			ScheduledStartTime: timePtr(time.Date(2026, 3, 18, 16, 0, 0, 0, time.UTC)),
		},
		// Cancelled by customer: ignored.
		{
			Status:       models.BookingCancelledByCustomer,
			QuotedAmount: 900,
			CreatedAt:    time.Date(2026, 3, 18, 8, 0, 0, 0, time.UTC),
		},
	}

	stats := ComputeStats(bookings, 4.6, now)

	assert.Equal(t, 2, stats.TodayJobs)
	assert.Equal(t, 3, stats.ThisWeekJobs)
	assert.Equal(t, 4000, stats.TotalEarnings)
	assert.Equal(t, 4.6, stats.Rating)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, 0, time.Now())
	assert.Zero(t, stats.TodayJobs)
	assert.Zero(t, stats.ThisWeekJobs)
	assert.Zero(t, stats.TotalEarnings)
}
