package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/careernav/internal/scheduler"
	"github.com/amishk599/careernav/internal/store"
)

var (
	olderThan  time.Duration
	pruneEvery time.Duration
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the snapshot cache",
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete cached snapshots older than --older-than",
	Long:  "Deletes stale snapshots once, or keeps pruning on an interval with --every until interrupted.",
	RunE:  runCachePrune,
}

func init() {
	cachePruneCmd.Flags().DurationVar(&olderThan, "older-than", 7*24*time.Hour, "delete snapshots fetched longer ago than this")
	cachePruneCmd.Flags().DurationVar(&pruneEvery, "every", 0, "repeat pruning on this interval until interrupted")
	cacheCmd.AddCommand(cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if olderThan <= 0 {
		return fmt.Errorf("--older-than must be positive, got %v", olderThan)
	}
	if pruneEvery < 0 {
		return fmt.Errorf("--every must not be negative, got %v", pruneEvery)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Cache.Path)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.Cache.Path, "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	if pruneEvery > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		task := store.NewPruneTask(sqlStore, olderThan, logger)
		return scheduler.NewScheduler([]scheduler.Task{task}, pruneEvery, logger).Run(ctx)
	}

	deleted, err := sqlStore.Cleanup(olderThan)
	if err != nil {
		logger.Error("cache prune failed", "error", err)
		os.Exit(1)
	}
	remaining, err := sqlStore.Count()
	if err != nil {
		logger.Warn("counting cached snapshots failed", "error", err)
	}

	fmt.Printf("Deleted %d snapshots older than %s (%d remaining)\n", deleted, olderThan, remaining)
	return nil
}
