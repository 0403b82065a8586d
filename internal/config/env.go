package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	DATABASE_DSN     PostgreSQL DSN
//	SMTP_HOST        SMTP server host
//	SMTP_PORT        SMTP server port
//	SENDER_EMAIL     sender identity for outbound mail
//	SENDER_PASSWORD  sender credential for outbound mail
//	CODE_TTL         one-time-code validity, minutes
//
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		config.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.SMTPPort = port
		}
	}
	if v := os.Getenv("SENDER_EMAIL"); v != "" {
		config.SenderEmail = v
	}
	if v := os.Getenv("SENDER_PASSWORD"); v != "" {
		config.SenderPassword = v
	}
	if v := os.Getenv("CODE_TTL"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.CodeTTL = time.Duration(minutes) * time.Minute
		}
	}
}
