package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/RahemShaikh/LoginSimulator/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, the set fields are copied
// into the runtime Config.
type JsonConfig struct {
	DatabaseDSN    string `json:"database_dsn"`
	SMTPHost       string `json:"smtp_host"`
	SMTPPort       int    `json:"smtp_port"`
	SenderEmail    string `json:"sender_email"`
	SenderPassword string `json:"sender_password"`
	CodeTTLMinutes int    `json:"code_ttl_minutes"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. Fields absent from the file keep their
// current values. If the file cannot be read or contains invalid JSON, the
// function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SMTPHost != "" {
		config.SMTPHost = c.SMTPHost
	}
	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	if c.SenderEmail != "" {
		config.SenderEmail = c.SenderEmail
	}
	if c.SenderPassword != "" {
		config.SenderPassword = c.SenderPassword
	}
	if c.CodeTTLMinutes != 0 {
		config.CodeTTL = time.Duration(c.CodeTTLMinutes) * time.Minute
	}
}
