package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	FrontendOrigin string
	AnthropicModel string // empty means the chat package default
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
}

// Load loads configuration from environment variables or sets defaults.
// The Anthropic API key is read from the environment by the SDK itself.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:     port,
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", ""),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       smtpPort,
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
