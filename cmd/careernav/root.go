package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/careernav/internal/config"
	"github.com/amishk599/careernav/internal/model"
	"github.com/amishk599/careernav/internal/ratelimit"
	"github.com/amishk599/careernav/internal/retry"
	"github.com/amishk599/careernav/internal/source"
	"github.com/amishk599/careernav/internal/store"
)

var (
	cfgPath     string
	debug       bool
	noCache     bool
	profilePath string
)

var rootCmd = &cobra.Command{
	Use:   "careernav",
	Short: "Career recommendations in your terminal",
	Long:  "careernav builds your career profile, then shows job matches, skill gaps, certifications and market insights.",
	// With no subcommand, run the interactive form and dashboard.
	RunE:         runInteractive,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: CAREERNAV_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the snapshot cache")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "YAML or JSON profile file; skips the intake form")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > CAREERNAV_CONFIG env var > "./config.yaml".
// Only the implicit default may be missing, in which case defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if env := os.Getenv("CAREERNAV_CONFIG"); env != "" {
		return config.Load(env)
	}
	return config.LoadOrDefault("config.yaml")
}

func setupLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// interactiveLogWriter picks where logs go while a TUI owns the terminal:
// the configured log file, or nowhere.
func interactiveLogWriter(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.LogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// setupStore opens the snapshot cache, or a NopStore when caching is off.
func setupStore(cfg *config.Config, logger *slog.Logger) (model.SnapshotStore, func(), error) {
	if noCache || !cfg.Cache.Enabled {
		logger.Debug("snapshot cache disabled")
		return store.NewNopStore(), func() {}, nil
	}
	sqlStore, err := store.NewSQLiteStore(cfg.Cache.Path)
	if err != nil {
		return nil, nil, err
	}
	return sqlStore, func() { sqlStore.Close() }, nil
}

// createSource builds the configured engine client without decorators.
func createSource(cfg *config.Config, httpClient *http.Client) (model.RecommendationSource, error) {
	switch cfg.Source.Type {
	case config.SourceFile:
		return source.NewFileSource(cfg.Source.Path), nil
	case config.SourceHTTP:
		return source.NewHTTPSource(cfg.Source.URL, cfg.Source.APIKey, httpClient), nil
	case config.SourceOpenAI:
		return source.NewOpenAISource(cfg.Source.URL, cfg.Source.APIKey, cfg.Source.Model, httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported source type %q", cfg.Source.Type)
	}
}

// setupSource wires engine -> rate limit -> retry -> cache. File fixtures
// are used as is.
func setupSource(cfg *config.Config, snapshots model.SnapshotStore, logger *slog.Logger) (model.RecommendationSource, error) {
	httpClient := &http.Client{Timeout: cfg.Source.Timeout}
	src, err := createSource(cfg, httpClient)
	if err != nil {
		return nil, err
	}
	if cfg.Source.Type == config.SourceFile {
		return src, nil
	}
	limiter := ratelimit.NewEndpointLimiter(cfg.Source.MinInterval)
	src = ratelimit.NewRateLimitedSource(src, limiter, cfg.Source.URL)
	src = retry.NewRetrySource(src, cfg.Retry.MaxRetries, cfg.Retry.BaseDelay, logger)
	identity := source.SourceIdentity(cfg.Source.Type, cfg.Source.URL, cfg.Source.Model)
	return source.NewCachedSource(src, identity, snapshots, cfg.Cache.TTL, logger), nil
}

// loadProfileFlag reads and validates the --profile file.
func loadProfileFlag() (*model.UserProfile, error) {
	if profilePath == "" {
		return nil, nil
	}
	p, err := source.LoadProfile(profilePath)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
