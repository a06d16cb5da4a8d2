package utils

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"housemate/config"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase app and messaging client. Push
// notifications are disabled when no credentials file is configured.
func FirebaseInit() {
	logger := GetLogger()

	credsFile := config.AppConfig.FirebaseCredentialsFile
	if credsFile == "" {
		logger.Warn("Firebase credentials file not configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credsFile))
	if err != nil {
		logger.Error("Failed to initialize Firebase app", zap.Error(err))
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Error("Failed to get Firebase messaging client", zap.Error(err))
		return
	}

	FCMClient = client
}
