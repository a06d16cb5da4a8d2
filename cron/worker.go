package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"housemate/config"
	"housemate/services/booking"
	"housemate/utils"
)

const (
	TypeBookingExpire   = "booking:expire"
	TypeBookingReminder = "booking:reminder"
)

// bookingTaskPayload carries the booking a deferred task acts on.
type bookingTaskPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}
}

// InitBookingWorker runs the async worker in the background. It retries
// startup a few times before giving up, since Redis may still be coming
// up alongside the API.
func InitBookingWorker(bookingSvc booking.BookingService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(bookingSvc))
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(bookingSvc))

	go func() {
		const maxAttempts = 5
		logger.Info("Starting booking task worker")

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Booking task worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Booking task worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleExpireTask runs the unpaid sweep when a booking's payment
// deadline passes. The sweep also catches anything a lost task left
// behind.
func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p bookingTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid expire payload", zap.Error(err))
			return err
		}
		if _, err := bookingSvc.ExpireUnpaid(); err != nil {
			utils.GetLogger().Error("expiry sweep failed",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handleReminderTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p bookingTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}
		return bookingSvc.SendReminder(p.BookingID)
	}
}
