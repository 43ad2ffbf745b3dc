package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/amishk599/careernav/internal/career"
	"github.com/amishk599/careernav/internal/config"
	"github.com/amishk599/careernav/internal/events"
	"github.com/amishk599/careernav/internal/intake"
	"github.com/amishk599/careernav/internal/model"
)

var errProfileRequired = errors.New("--profile is required")

// fetchSnapshot loads the --profile file and fetches its snapshot through the
// configured source, logging to stderr.
func fetchSnapshot() (*config.Config, model.UserProfile, *model.Snapshot, error) {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, model.UserProfile{}, nil, fmt.Errorf("load config: %w", err)
	}

	prepared, err := loadProfileFlag()
	if err != nil {
		return nil, model.UserProfile{}, nil, err
	}
	if prepared == nil {
		return nil, model.UserProfile{}, nil, errProfileRequired
	}
	if err := intake.ValidateProfile(*prepared); err != nil {
		return nil, model.UserProfile{}, nil, fmt.Errorf("profile %s: %w", profilePath, err)
	}

	snapshots, closeStore, err := setupStore(cfg, logger)
	if err != nil {
		return nil, model.UserProfile{}, nil, fmt.Errorf("open snapshot cache: %w", err)
	}
	defer closeStore()

	src, err := setupSource(cfg, snapshots, logger)
	if err != nil {
		return nil, model.UserProfile{}, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Source.Timeout)
	defer cancel()

	session := career.NewSession(src, events.NewNopRecorder(), logger.With(slog.String("profile", profilePath)))
	snap, err := session.Submit(ctx, *prepared)
	if err != nil {
		return nil, model.UserProfile{}, nil, err
	}
	return cfg, *prepared, snap, nil
}
