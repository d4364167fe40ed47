package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment. A missing
// .env file is fine; explicit environment variables always win over it.
type Config struct {
	Port            string
	DBPath          string
	SecretKey       string
	CredentialsFile string
	GoogleAPIKey    string
	GeminiModel     string
	WebDir          string
	Location        *time.Location
	CookieSecure    bool
}

// Load reads .env best-effort and resolves every key with its fallback.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", filepath.Join("data", "vitale.db")),
		SecretKey:       os.Getenv("SECRET_KEY"),
		CredentialsFile: getEnv("CREDENTIALS_FILE", "credentials.yaml"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-pro"),
		WebDir:          getEnv("WEB_DIR", "web"),
		Location:        loadLocation(getEnv("TZ", "Local")),
		CookieSecure:    getBoolEnv("COOKIE_SECURE", false),
	}
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getBoolEnv(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
