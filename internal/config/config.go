package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Redis (drafts); empty keeps drafts in memory
	RedisURL string
	DraftTTL time.Duration

	// JWT (verification only, tokens are issued by the backend)
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Backend REST API
	BackendBaseURL        string
	BackendTimeoutSeconds int
	BackendUserAgent      string
	MessageLocale         string

	// Catalogue refresh period for draft pricing
	CatalogRefresh time.Duration

	// Public URLs
	FrontendURL string
	PublicURL   string

	// Payment QR
	QRSize int

	// Reference images
	ImageMaxWidth  int
	ImageMaxHeight int
	ImageQuality   int
	ImageMaxBytes  int64

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),
		DraftTTL: parseDuration(getEnv("DRAFT_TTL", "2h"), 2*time.Hour),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Backend
		BackendBaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:5000/api"),
		BackendTimeoutSeconds: parseInt(getEnv("BACKEND_TIMEOUT_SECONDS", "10"), 10),
		BackendUserAgent:      getEnv("BACKEND_USER_AGENT", "SPlus/1.0 gateway"),
		MessageLocale:         getEnv("MESSAGE_LOCALE", "vi"),
		CatalogRefresh:        parseDuration(getEnv("CATALOG_REFRESH", "5m"), 5*time.Minute),

		// Public URLs
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		PublicURL:   getEnv("PUBLIC_URL", "http://localhost:8080"),

		// QR
		QRSize: parseInt(getEnv("QR_SIZE", "256"), 256),

		// Images
		ImageMaxWidth:  parseInt(getEnv("IMAGE_MAX_WIDTH", "1920"), 1920),
		ImageMaxHeight: parseInt(getEnv("IMAGE_MAX_HEIGHT", "1920"), 1920),
		ImageQuality:   parseInt(getEnv("IMAGE_QUALITY", "85"), 85),
		ImageMaxBytes:  int64(parseInt(getEnv("IMAGE_MAX_MB", "10"), 10)) << 20,

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

// BackendTimeout returns the fixed overall timeout for backend calls.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.BackendTimeoutSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
