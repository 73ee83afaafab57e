package main

import (
	"context"
	"os"
	"strings"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/config"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/database"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/health"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/leetcode"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/logger"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/storage"
	syncer "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/sync"
	"github.com/fatih/color"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}
	logger.EnableDebug(strings.EqualFold(cfg.LogLevel, "debug"))

	ctx := context.Background()

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(ctx, cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Expose health + metrics quand la plateforme d'hébergement fournit un port
	if cfg.Port != "" {
		health.StartServer(cfg.Port)
	}

	client := leetcode.NewClient(cfg)
	store := storage.NewStore(db)
	writer := storage.NewWriter(db)

	runner := syncer.NewRunner(client, store, writer, syncer.Pacing{
		RequestDelay: cfg.RequestDelay(),
	}, cfg.RecentLimit)

	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Error("Sync run failed: %v", err)
		os.Exit(1)
	}

	color.Green("Run %s finished: %d/%d users synced (%d skipped, %d failed) in %s",
		summary.RunID, summary.Synced, summary.Total, summary.Skipped, summary.Failed, summary.Duration)
}
