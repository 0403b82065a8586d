package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{
		"loginsim",
		"-d", "postgres://flag:flag@db:5432/flag",
		"-m", "mail.flag.org",
		"-p", "587",
		"-f", "flag@example.org",
		"-w", "flag-secret",
		"-t", "2",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "postgres://flag:flag@db:5432/flag", c.DatabaseDSN)
	assert.Equal(t, "mail.flag.org", c.SMTPHost)
	assert.Equal(t, 587, c.SMTPPort)
	assert.Equal(t, "flag@example.org", c.SenderEmail)
	assert.Equal(t, "flag-secret", c.SenderPassword)
	assert.Equal(t, 2*time.Minute, c.CodeTTL)
}

func Test_parseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"loginsim", "-z", "whatever", "-d", "dsn-from-flag"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "dsn-from-flag", c.DatabaseDSN)
}
