package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/RahemShaikh/LoginSimulator/internal/auth"
	"github.com/RahemShaikh/LoginSimulator/internal/buildinfo"
	"github.com/RahemShaikh/LoginSimulator/internal/cli"
	"github.com/RahemShaikh/LoginSimulator/internal/config"
	"github.com/RahemShaikh/LoginSimulator/internal/logging"
	"github.com/RahemShaikh/LoginSimulator/internal/notify"
	"github.com/RahemShaikh/LoginSimulator/internal/store"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	repo, db, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("opening account store: %v", err)
	}
	defer db.Close()

	// The menu loop blocks on stdin, so Ctrl+C is handled out of band:
	// print the farewell and leave, mirroring a typed "quit".
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cli.PrintFarewell(os.Stdout)
		db.Close()
		os.Exit(0)
	}()

	notifier := notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
	codes := auth.NewCodeService(notifier, cfg.CodeTTL)
	core := auth.NewCore(repo, codes, logger)

	app := cli.NewApp(core, logger)
	app.Run(ctx)
}
