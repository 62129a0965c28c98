// Larder - personal meal planning from your terminal.
//
// Links the Mela recipe library, Apple Calendar, and Apple Reminders to
// an append-mostly meal ledger.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/larderhq/larder/internal/cli"
	"github.com/larderhq/larder/internal/config"
	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/log"
	"github.com/larderhq/larder/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and open the ledger for the persistent tracking ID
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)

	// Best-effort log file; the CLI still works without one.
	if err := log.Init(paths.Logs); err == nil {
		defer func() { _ = log.Close() }()
	}

	database, err := db.New(db.DefaultConfig(paths.Ledger))
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
