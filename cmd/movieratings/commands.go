package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/movieratings/internal/application"
	"github.com/JonMunkholm/movieratings/internal/config"
	"github.com/JonMunkholm/movieratings/internal/core"
	"github.com/JonMunkholm/movieratings/internal/logging"
	"github.com/JonMunkholm/movieratings/internal/metrics"
	"github.com/JonMunkholm/movieratings/internal/web"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "movieratings",
		Short:         "Analyse a CSV file of movie ratings",
		Long:          "Loads a movie ratings CSV and answers top/worst, per-year and per-genre queries from an interactive menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConsole,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the loaded dataset over a read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// app is the state shared by every command once startup has finished.
type app struct {
	cfg     *config.Config
	dataset *core.Dataset
	loadErr error
	service *core.Service
}

// bootstrap loads configuration, installs the logger and opens the dataset.
// A dataset that fails to load is not fatal; the error is kept for reporting.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded",
		"data_path", cfg.Data.Path,
		"default_count", cfg.Query.DefaultCount,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	ds, loadErr := core.Open(cfg.Data.Path)
	if loadErr != nil {
		metrics.ObserveLoadError(core.MapError(loadErr).Code)
	}
	metrics.SetDatasetSize(ds.Len())

	return &app{
		cfg:     cfg,
		dataset: ds,
		loadErr: loadErr,
		service: core.NewService(ds, cfg.Query.DefaultCount),
	}, nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console := application.NewConsole(a.service, cmd.InOrStdin(), cmd.OutOrStdout())
	console.Banner()
	console.ReportLoad(a.dataset, a.loadErr)

	if err := console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	if a.loadErr != nil {
		slog.Warn("serving an empty dataset", "code", core.MapError(a.loadErr).Code)
	}

	server := web.NewServer(a.service, a.cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
