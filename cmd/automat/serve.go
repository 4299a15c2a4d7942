package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/adapters/file"
	"github.com/aretw0/automat/internal/adapters/redis"
	"github.com/aretw0/automat/internal/config"
	"github.com/aretw0/automat/internal/logging"
	"github.com/aretw0/automat/internal/presentation/tui"
	adapter "github.com/aretw0/automat/pkg/adapters/http"
	"github.com/aretw0/automat/pkg/adapters/memory"
	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/observability"
	"github.com/aretw0/automat/pkg/ports"
)

// serveCmd starts the HTTP catalog API.
var serveCmd = &cobra.Command{
	Use:   "serve [machine.yaml]...",
	Short: "Start the HTTP machine catalog API",
	Long: `Serves the machine catalog over HTTP. Configuration comes from the
environment (AUTOMAT_ADDR, AUTOMAT_STORE, ...) with flags taking
precedence. Definition files given as arguments are loaded into the
store before the server starts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatal(err)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("store") {
			cfg.Store, _ = cmd.Flags().GetString("store")
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
		}

		level := slog.LevelInfo
		if debug, _ := cmd.Flags().GetBool("debug"); debug || cfg.Debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		store, err := buildStore(cfg)
		if err != nil {
			fatal(err)
		}

		if err := preload(cmd.Context(), store, args); err != nil {
			fatal(err)
		}

		metrics := observability.NewMetrics()
		handler := adapter.NewHandler(store,
			adapter.WithLogger(logger),
			adapter.WithMetrics(metrics),
		)

		if useColor(cmd) {
			tui.PrintBanner()
		}

		if err := listen(cfg.Addr, handler, logger); err != nil {
			fatal(err)
		}
	},
}

func buildStore(cfg config.Config) (ports.DefinitionStore, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewStore(), nil
	case config.StoreFile:
		return file.New(cfg.DataDir), nil
	case config.StoreRedis:
		return redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

// preload compiles and saves the given definition files.
func preload(ctx context.Context, store ports.DefinitionStore, paths []string) error {
	for _, path := range paths {
		def, err := definition.ParseFile(path)
		if err != nil {
			return err
		}
		if _, err := def.Compile(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := store.Save(ctx, def); err != nil {
			return err
		}
	}
	return nil
}

func listen(addr string, handler http.Handler, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.Info("shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides AUTOMAT_ADDR)")
	serveCmd.Flags().String("store", "", "Store backend: memory, file or redis (overrides AUTOMAT_STORE)")
	serveCmd.Flags().String("data-dir", "", "Directory for the file store (overrides AUTOMAT_DATA_DIR)")
	rootCmd.AddCommand(serveCmd)
}
