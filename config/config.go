package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTExpiryHours    int    `mapstructure:"JWT_EXPIRY_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisJobsDB   int    `mapstructure:"REDIS_JOBS_DB"`

	// Booking flow knobs.
	DraftTTLMinutes     int `mapstructure:"DRAFT_TTL_MINUTES"`     // booking draft session lifetime
	PaymentTTLMinutes   int `mapstructure:"PAYMENT_TTL_MINUTES"`   // unpaid booking expiry
	ASAPDefaultETAMin   int `mapstructure:"ASAP_DEFAULT_ETA_MIN"`  // quoted ETA for immediate jobs
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"` // scheduled-booking reminder lead

	// Firebase Cloud Messaging.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Cloudinary (expert ID-proof storage).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Admin API key for approval/moderation endpoints.
	AdminAPIKey string `mapstructure:"ADMIN_API_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_JOBS_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "housemate")
	viper.SetDefault("DRAFT_TTL_MINUTES", 30)
	viper.SetDefault("PAYMENT_TTL_MINUTES", 30)
	viper.SetDefault("ASAP_DEFAULT_ETA_MIN", 35)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("ADMIN_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
