package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vish0009/MWPL-NSE/internal/ai"
	"github.com/vish0009/MWPL-NSE/internal/config"
	"github.com/vish0009/MWPL-NSE/internal/dashboard"
	"github.com/vish0009/MWPL-NSE/internal/logger"
	"github.com/vish0009/MWPL-NSE/internal/scheduler"
	"github.com/vish0009/MWPL-NSE/internal/storage"
	"github.com/vish0009/MWPL-NSE/internal/telegram"
	"github.com/vish0009/MWPL-NSE/internal/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("starting mwpl dashboard", "provider", cfg.AI.Provider)

	db, err := storage.NewDatabase(cfg.Storage.Path)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	repo := storage.NewRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := telegram.NewNotifier(cfg, log)

	// An AI init failure is not fatal to the process: the dashboard is still
	// served, with refresh disabled for the session.
	var ctrl *dashboard.Controller
	aiClient, initErr := ai.NewClient(ctx, cfg, log)
	if initErr != nil {
		log.Error("ai client init failed, refresh disabled", "error", initErr)
		notifier.NotifyFetchError("init", initErr)
	} else {
		ctrl = dashboard.NewController(aiClient, cfg.AI.Provider, repo, notifier, log)
	}

	webServer := web.NewServer(ctrl, initErr, repo, cfg, log)

	if ctrl != nil {
		sched := scheduler.NewScheduler(ctrl, cfg, log)
		go sched.Run(ctx)
	}

	go func() {
		if err := webServer.Start(); err != nil {
			log.Error("web server error", "error", err)
		}
	}()

	notifier.NotifyStatus("📊 MWPL dashboard started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := webServer.Shutdown(shutdownCtx); err != nil {
		log.Error("web server shutdown error", "error", err)
	}

	notifier.NotifyStatus("🛑 MWPL dashboard stopped")
	log.Info("mwpl dashboard stopped")
}
