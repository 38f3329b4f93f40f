package config

import (
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// SendGrid email delivery. An empty API key means enquiries are
	// recorded and logged but no email is sent.
	SendGridAPIKey   string
	EnquiryToEmail   string
	EnquiryToName    string
	EnquiryFromEmail string
	EnquiryFromName  string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		EnquiryToEmail:     getEnv("ENQUIRY_TO_EMAIL", "hello@rnperera.com"),
		EnquiryToName:      getEnv("ENQUIRY_TO_NAME", "Ruwan Perera"),
		EnquiryFromEmail:   getEnv("ENQUIRY_FROM_EMAIL", "enquiries@rnperera.com"),
		EnquiryFromName:    getEnv("ENQUIRY_FROM_NAME", "Portfolio Enquiries"),
	}
}

// EmailConfigured reports whether a delivery credential is present.
func (c *Config) EmailConfigured() bool {
	return strings.TrimSpace(c.SendGridAPIKey) != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
