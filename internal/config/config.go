// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dataset source kinds.
const (
	DatasetCSV      = "csv"
	DatasetPostgres = "postgres"
)

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port string

	// Dataset
	DatasetPath   string
	DatasetSource string

	// Uploads
	UploadDir   string
	MaxUploadMB int

	// AWS
	AWSRegion    string
	ReportBucket string

	// Database
	DBEnabled  bool
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// SES
	SESSenderEmail string

	// Reports
	ReportLinkExpiryMinutes int

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "5000"),

		// Dataset
		DatasetPath:   getEnv("DATASET_PATH", "SME_Financial_Health_Dataset.csv"),
		DatasetSource: strings.ToLower(getEnv("DATASET_SOURCE", DatasetCSV)),

		// Uploads
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 16),

		// AWS
		AWSRegion:    getEnv("AWS_REGION", "ap-south-1"),
		ReportBucket: getEnv("REPORT_BUCKET", ""),

		// Database
		DBEnabled:  getEnvBool("DB_ENABLED", false),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBName:     getEnv("DB_NAME", "sme_financial_health"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),

		// SES
		SESSenderEmail: getEnv("SES_SENDER_EMAIL", ""),

		// Reports
		ReportLinkExpiryMinutes: getEnvInt("REPORT_LINK_EXPIRY_MINUTES", 60),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	sslMode := "require" // Use SSL for RDS
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable" // Disable SSL for local development
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + strconv.Itoa(c.DBPort) + "/" + c.DBName + "?sslmode=" + sslMode
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// ReportLinkExpiry returns how long shared report links stay valid.
func (c *Config) ReportLinkExpiry() time.Duration {
	return time.Duration(c.ReportLinkExpiryMinutes) * time.Minute
}

// S3Enabled reports whether report archiving is configured.
func (c *Config) S3Enabled() bool {
	return c.ReportBucket != ""
}

// SESEnabled reports whether report emails can be sent.
func (c *Config) SESEnabled() bool {
	return c.SESSenderEmail != "" && c.S3Enabled()
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool retrieves an environment variable as bool or returns a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
