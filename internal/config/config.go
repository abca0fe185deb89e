package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Session Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"10m"`

	// Admin credentials (bcrypt hash of the admin password)
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Routing Config (distance matrix provider)
	DistanceMatrixURL string        `env:"DISTANCE_MATRIX_URL" envDefault:"https://api.distancematrix.ai"`
	DistanceMatrixKey string        `env:"DISTANCE_MATRIX_KEY"`
	RoutingTimeout    time.Duration `env:"ROUTING_TIMEOUT" envDefault:"5s"`

	// SMS Config
	TwilioAccountSID string        `env:"TWILIO_SID"`
	TwilioAuthToken  string        `env:"TWILIO_AUTH"`
	TwilioFromNumber string        `env:"TWILIO_NUMBER"`
	CountryCode      string        `env:"COUNTRY_CALLING_CODE" envDefault:"+63"`
	SMSTimeout       time.Duration `env:"SMS_TIMEOUT" envDefault:"5s"`
	SMSMaxRetries    int           `env:"SMS_MAX_RETRIES" envDefault:"3"`
	SMSBaseDelay     time.Duration `env:"SMS_BASE_DELAY" envDefault:"2s"`
	AlertTemplate    string        `env:"ALERT_TEMPLATE"`

	// Device event gateway (websocket)
	DeviceEventURL string `env:"DEVICE_EVENT_URL" envDefault:"ws://127.0.0.1:5000/api"`

	// Maps keys exposed to mobile clients via /admin/config
	MapsAPIKey          string `env:"MAPS_API"`
	ReverseGeocodingAPI string `env:"REVERSE_GEOCODING_API"`

	// Dashboard stats window
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"1440"`
}

// DefaultAlertTemplate is used when neither the establishment nor the
// environment configures a message template.
const DefaultAlertTemplate = "FIRE ALERT: A fire has been detected at {establishment} located at {location}. Please respond immediately."

// LoadConfig loads configuration from environment variables and the .env file
func LoadConfig() (*Config, error) {
	// Load environment variables from .env (if present)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTExpiry:              getEnvAsDuration("JWT_EXPIRY", 10*time.Minute),
		AdminUsername:          getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:      os.Getenv("ADMIN_PASSWORD_HASH"),
		DistanceMatrixURL:      getEnv("DISTANCE_MATRIX_URL", "https://api.distancematrix.ai"),
		DistanceMatrixKey:      os.Getenv("DISTANCE_MATRIX_KEY"),
		RoutingTimeout:         getEnvAsDuration("ROUTING_TIMEOUT", 5*time.Second),
		TwilioAccountSID:       os.Getenv("TWILIO_SID"),
		TwilioAuthToken:        os.Getenv("TWILIO_AUTH"),
		TwilioFromNumber:       os.Getenv("TWILIO_NUMBER"),
		CountryCode:            getEnv("COUNTRY_CALLING_CODE", "+63"),
		SMSTimeout:             getEnvAsDuration("SMS_TIMEOUT", 5*time.Second),
		SMSMaxRetries:          getEnvAsInt("SMS_MAX_RETRIES", 3),
		SMSBaseDelay:           getEnvAsDuration("SMS_BASE_DELAY", 2*time.Second),
		AlertTemplate:          getEnv("ALERT_TEMPLATE", DefaultAlertTemplate),
		DeviceEventURL:         getEnv("DEVICE_EVENT_URL", "ws://127.0.0.1:5000/api"),
		MapsAPIKey:             os.Getenv("MAPS_API"),
		ReverseGeocodingAPI:    os.Getenv("REVERSE_GEOCODING_API"),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 1440),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable value as int or a default
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment variable value as time.Duration or a default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
