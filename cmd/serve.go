package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sahiltalaviya99/portfolio/internal/config"
	"github.com/sahiltalaviya99/portfolio/internal/logging"
	"github.com/sahiltalaviya99/portfolio/internal/server"
	"github.com/sahiltalaviya99/portfolio/internal/visits"
)

const retentionSweep = 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, Version)
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.Mode)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	var opts []server.Option

	var store *visits.Store
	if cfg.Visits.Enabled() {
		var err error
		store, err = visits.Open(cfg.Visits.DBPath, visits.WithLogger(logger.Named("visits")))
		if err != nil {
			return fmt.Errorf("opening visits database: %w", err)
		}
		defer store.Close()
		opts = append(opts, server.WithVisits(store))
	}

	srv, err := server.New(cfg, logger, opts...)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	if store != nil {
		retention := time.Duration(cfg.Visits.RetentionDays) * 24 * time.Hour
		g.Go(func() error {
			return store.RunRetention(ctx, retention, retentionSweep)
		})
	}
	return g.Wait()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
