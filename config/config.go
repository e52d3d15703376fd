package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// TailwindCSSURL is the stylesheet used by every page.
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	// FontAwesomeURL provides the icons of the project links and social buttons.
	FontAwesomeURL = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"

	// PageScriptPath forwards pointer, intersection and unload events.
	PageScriptPath = "/js/portfolio.js"

	// VisibilityThreshold is the intersection ratio that reveals a section.
	VisibilityThreshold = 0.0

	// ServerUploadLimit caps request bodies; the largest is a contact message.
	ServerUploadLimit = 64 * 1024
)

type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Contact ContactConfig
}

type ServerConfig struct {
	Port               string
	SessionTTL         time.Duration
	RateLimitMax       int
	RateLimitExp       time.Duration
	SubmitRateLimitMax int
	ReadWriteTimeout   time.Duration
}

type ContentConfig struct {
	// Path overrides the embedded content document when set.
	Path string
}

type ContactConfig struct {
	DatabaseURL        string
	SendTimeout        time.Duration
	SimulatedSendDelay time.Duration

	SendGridAPIKey string
	FromEmail      string
	ToEmail        string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	ToNumber         string
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			SessionTTL:         getEnvAsDuration("SESSION_TTL", 2*time.Hour),
			RateLimitMax:       getEnvAsInt("RATE_LIMIT_MAX", 300),
			RateLimitExp:       getEnvAsDuration("RATE_LIMIT_EXPIRATION", time.Minute),
			SubmitRateLimitMax: getEnvAsInt("SUBMIT_RATE_LIMIT_MAX", 5),
			ReadWriteTimeout:   getEnvAsDuration("SERVER_TIMEOUT", 30*time.Second),
		},
		Content: ContentConfig{
			Path: getEnv("CONTENT_PATH", ""),
		},
		Contact: ContactConfig{
			DatabaseURL:        getEnv("DATABASE_URL", ""),
			SendTimeout:        getEnvAsDuration("SEND_TIMEOUT", 15*time.Second),
			SimulatedSendDelay: getEnvAsDuration("SIMULATED_SEND_DELAY", time.Second),
			SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
			FromEmail:          getEnv("CONTACT_FROM_EMAIL", ""),
			ToEmail:            getEnv("CONTACT_TO_EMAIL", ""),
			TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
			TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
			TwilioFromNumber:   getEnv("TWILIO_FROM_NUMBER", ""),
			ToNumber:           getEnv("CONTACT_TO_NUMBER", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Contact.SendTimeout <= 0 {
		return fmt.Errorf("SEND_TIMEOUT must be positive")
	}
	if c.Contact.SendGridAPIKey != "" && (c.Contact.FromEmail == "" || c.Contact.ToEmail == "") {
		return fmt.Errorf("CONTACT_FROM_EMAIL and CONTACT_TO_EMAIL are required with SENDGRID_API_KEY")
	}
	if c.Contact.TwilioAccountSID != "" && (c.Contact.TwilioFromNumber == "" || c.Contact.ToNumber == "") {
		return fmt.Errorf("TWILIO_FROM_NUMBER and CONTACT_TO_NUMBER are required with TWILIO_ACCOUNT_SID")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
