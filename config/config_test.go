package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "housemate", AppConfig.DatabaseName)
	assert.Equal(t, 24, AppConfig.JWTExpiryHours)
	assert.Equal(t, 30, AppConfig.DraftTTLMinutes)
	assert.Equal(t, 30, AppConfig.PaymentTTLMinutes)
	assert.Equal(t, 35, AppConfig.ASAPDefaultETAMin)
	assert.Equal(t, 60, AppConfig.ReminderLeadMinutes)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig.Env
	defer func() { AppConfig.Env = prev }()

	AppConfig.Env = "development"
	assert.False(t, IsProduction())

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
}
