package utils

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"housemate/config"
)

var logger *zap.Logger

// InitializeLogger builds the process-wide logger. The level comes from
// LOG_LEVEL; production uses the JSON encoder, development gets colored
// console output.
func InitializeLogger() {
	var cfg zap.Config
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(config.AppConfig.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger returns the process-wide logger, building it on first use.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitializeLogger()
	}
	return logger
}
