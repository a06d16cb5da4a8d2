package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	expertRepo "housemate/database/repository/expert"
	userRepo "housemate/database/repository/user"
	"housemate/utils"
)

// NotificationService defines methods for sending FCM pushes to the
// two sides of the marketplace.
type NotificationService interface {
	SendCustomerPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendExpertPush(ctx context.Context, expertProfileID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation. Pushes
// are best-effort: a missing token or a send failure is logged, never
// propagated into the booking flow.
type DefaultNotificationService struct {
	UserRepo   userRepo.UserRepository
	ExpertRepo expertRepo.ExpertRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository, experts expertRepo.ExpertRepository) (*DefaultNotificationService, error) {
	if users == nil || experts == nil {
		return nil, fmt.Errorf("notification service initialization error: nil repository")
	}
	return &DefaultNotificationService{UserRepo: users, ExpertRepo: experts}, nil
}

// SendCustomerPush looks up a customer's FCM token and sends a push.
func (s *DefaultNotificationService) SendCustomerPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		utils.GetLogger().Debug("no push token for user", zap.String("userId", userID))
		return nil
	}
	return send(ctx, u.FCMToken, title, body, data)
}

// SendExpertPush resolves the expert's user account and sends a push.
func (s *DefaultNotificationService) SendExpertPush(ctx context.Context, expertProfileID, title, body string, data map[string]string) error {
	profile, err := s.ExpertRepo.GetByID(expertProfileID)
	if err != nil {
		return fmt.Errorf("could not find expert %s: %w", expertProfileID, err)
	}
	if profile == nil {
		return fmt.Errorf("expert %s not found", expertProfileID)
	}
	u, err := s.UserRepo.GetByID(profile.UserID)
	if err != nil {
		return fmt.Errorf("could not find user for expert %s: %w", expertProfileID, err)
	}
	if u == nil || u.FCMToken == "" {
		utils.GetLogger().Debug("no push token for expert", zap.String("expertId", expertProfileID))
		return nil
	}
	return send(ctx, u.FCMToken, title, body, data)
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("push skipped, FCM not configured")
		return nil
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("failed to send push", zap.Error(err))
		return err
	}
	return nil
}
