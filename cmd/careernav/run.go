package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/careernav/internal/career"
	"github.com/amishk599/careernav/internal/config"
	"github.com/amishk599/careernav/internal/events"
	"github.com/amishk599/careernav/internal/intake"
	"github.com/amishk599/careernav/internal/model"
	"github.com/amishk599/careernav/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill in your profile and browse recommendations (TUI)",
	Long:  "Runs the three-step profile form, fetches recommendations, then opens the tabbed dashboard. Same as running careernav with no subcommand.",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal; logs must never reach stdout.
	w, closeLog, err := interactiveLogWriter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := setupLogger(w, debug)

	snapshots, closeStore, err := setupStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open snapshot cache: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	src, err := setupSource(cfg, snapshots, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	prepared, err := loadProfileFlag()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	recorder := events.NewLogRecorder(logger)
	session := career.NewSession(src, recorder, logger)
	return runLoop(cfg, session, recorder, prepared)
}

// runLoop cycles form -> loader -> dashboard until the user quits. A valid
// prepared profile skips the form once; an invalid one prefills it. Updating
// the profile from the dashboard resets the session and shows an empty form.
func runLoop(cfg *config.Config, session *career.Session, recorder model.EventRecorder, prepared *model.UserProfile) error {
	for {
		profile, ok, err := nextProfile(cfg, prepared)
		prepared = nil
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		snap, err := tui.RunLoader(cfg.Source.Timeout, func(ctx context.Context) (*model.Snapshot, error) {
			return session.Submit(ctx, profile)
		})
		if errors.Is(err, tui.ErrCancelled) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not fetch recommendations: %v\n", err)
			return err
		}

		result, err := tui.RunDashboard(tui.DashboardOptions{
			Profile:  profile,
			Snapshot: snap,
			Recorder: recorder,
			Filter:   cfg.Dashboard.DefaultFilter,
			Sort:     cfg.Dashboard.DefaultSort,
		})
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if result != tui.DashboardReset {
			return nil
		}
		session.Reset()
	}
}

func nextProfile(cfg *config.Config, prepared *model.UserProfile) (model.UserProfile, bool, error) {
	form := intake.NewForm(cfg.Form.MaxSkills, time.Now())
	if prepared != nil {
		form.Prefill(*prepared)
		if p, err := form.Submit(); err == nil {
			return p, true, nil
		}
	}
	profile, ok, err := tui.RunForm(form)
	if err != nil {
		return model.UserProfile{}, false, fmt.Errorf("form: %w", err)
	}
	return profile, ok, nil
}
