package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// AsynqScheduler enqueues deferred booking tasks. It satisfies the
// booking package's TaskScheduler interface.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler creates a scheduler backed by the jobs Redis DB.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleExpiry enqueues the unpaid-booking check to fire after the
// payment window.
func (s *AsynqScheduler) ScheduleExpiry(bookingID string, delay time.Duration) error {
	task, err := newBookingTask(TypeBookingExpire, bookingID)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue expiry for booking %s: %w", bookingID, err)
	}
	return nil
}

// ScheduleReminder enqueues the upcoming-job reminder at the lead time.
func (s *AsynqScheduler) ScheduleReminder(bookingID string, at time.Time) error {
	task, err := newBookingTask(TypeBookingReminder, bookingID)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", bookingID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}

func newBookingTask(taskType, bookingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(bookingTaskPayload{BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task payload: %w", err)
	}
	return asynq.NewTask(taskType, payload), nil
}
