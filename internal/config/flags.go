package config

import (
	"flag"
	"os"
	"time"

	"github.com/RahemShaikh/LoginSimulator/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-m string   SMTP host
//	-p int      SMTP port
//	-f string   sender e-mail
//	-w string   sender password
//	-t int      one-time-code validity, minutes
//
// The function first filters os.Args to only the flags it recognizes via
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled
// by the JSON loader.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-p", "-f", "-w", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SMTPHost, "m", config.SMTPHost, "SMTP host")
	fs.IntVar(&config.SMTPPort, "p", config.SMTPPort, "SMTP port")
	fs.StringVar(&config.SenderEmail, "f", config.SenderEmail, "sender e-mail")
	fs.StringVar(&config.SenderPassword, "w", config.SenderPassword, "sender password")

	codeTTL := fs.Int("t", int(config.CodeTTL.Minutes()), "one-time-code validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CodeTTL = time.Duration(*codeTTL) * time.Minute
}
