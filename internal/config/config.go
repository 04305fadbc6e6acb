package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every environment-sourced setting the service needs.
type Config struct {
	DatabaseURL string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSecure    bool

	SMTPHost      string
	SMTPPort      int
	SMTPFromEmail string
	SMTPFromName  string

	JWTSecret     string
	JWTExpiration time.Duration

	AttorneyEmail     string
	AttorneyPassword  string
	AttorneyFirstName string
	AttorneyLastName  string

	MaxUploadSize int64

	HTTPAddr string
}

// AllowedExtensions is the fixed set of accepted resume file types.
var AllowedExtensions = []string{".pdf", ".doc", ".docx"}

// Load reads a .env file if present and resolves the configuration from the
// environment. Required keys missing from the environment are an error.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MinioEndpoint:     os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:    os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:       getEnv("MINIO_BUCKET", "resumes"),
		MinioSecure:       getEnvBool("MINIO_SECURE", false),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPFromEmail:     os.Getenv("SMTP_FROM_EMAIL"),
		SMTPFromName:      getEnv("SMTP_FROM_NAME", "AlmaLead"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTExpiration:     time.Duration(getEnvInt("JWT_EXPIRATION_MINUTES", 1440)) * time.Minute,
		AttorneyEmail:     os.Getenv("ATTORNEY_EMAIL"),
		AttorneyPassword:  os.Getenv("ATTORNEY_PASSWORD"),
		AttorneyFirstName: getEnv("ATTORNEY_FIRST_NAME", "John"),
		AttorneyLastName:  getEnv("ATTORNEY_LAST_NAME", "Attorney"),
		MaxUploadSize:     int64(getEnvInt("MAX_UPLOAD_SIZE", 10485760)),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
	}

	for key, val := range map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"JWT_SECRET":   cfg.JWTSecret,
	} {
		if val == "" {
			return nil, fmt.Errorf("missing required environment variable %s", key)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
