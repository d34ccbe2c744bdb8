package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tubepick/internal/api/server"
	"tubepick/internal/api/v1/services"
	"tubepick/internal/app"
	"tubepick/internal/app/ui"
	"tubepick/internal/config"
	"tubepick/internal/logging"
)

var (
	host        string
	port        string
	environment string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "127.0.0.1", "interface to bind")
	Cmd.Flags().StringVarP(&port, "port", "p", "8080", "port to listen on")
	Cmd.Flags().StringVar(&environment, "environment", "development", "environment (development or production)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the find workflow as a JSON API with a web page",
	Long: `Serve the find workflow as a JSON API with a web page

- POST /api/v1/find runs the search → filter → best-pick workflow
- GET / serves the search page, GET /health and GET /metrics the probes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}
		if err := config.RequireFindKeys(keys); err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		appLogger := logging.NewLogger(verbose)
		defer func() { _ = appLogger.Sync() }()

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		ctx := cmd.Context()
		finder, err := app.InitializeFinder(ctx, keys, ui.NewSilent(), appLogger)
		if err != nil {
			return err
		}

		cfg := server.DefaultConfig()
		cfg.Host = host
		cfg.Port = port
		cfg.Environment = environment

		srv := server.NewServer(cfg, services.NewFindService(finder), logger)

		// Graceful shutdown on interrupt
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-quit
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", "error", err)
			}
		}()

		return srv.Start()
	},
}
