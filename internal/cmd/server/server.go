// Package server wires configuration, storage and the HTTP surface for the
// randomness service process.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/themugglecoder/quantumrand/internal/core/bits"
	"github.com/themugglecoder/quantumrand/internal/generate"
	"github.com/themugglecoder/quantumrand/internal/platform/config"
	"github.com/themugglecoder/quantumrand/internal/platform/otel"
	"github.com/themugglecoder/quantumrand/internal/services/web"
	"github.com/themugglecoder/quantumrand/internal/storage"
	"github.com/themugglecoder/quantumrand/internal/storage/sqlite"
	"github.com/themugglecoder/quantumrand/internal/telemetry"
)

// Config holds the server command configuration.
type Config struct {
	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string `env:"QUANTUMRAND_HTTP_ADDR" envDefault:"localhost:8080"`
	// DBPath locates the telemetry database. Empty disables persistence;
	// generation itself never depends on it.
	DBPath string `env:"QUANTUMRAND_DB_PATH"`
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "telemetry database path (empty disables history)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the randomness server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "quantumrand")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	var history storage.EventStore
	if cfg.DBPath != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open telemetry store: %w", err)
		}
		defer store.Close()
		history = store
	}

	service := generate.NewService(
		bits.NewGenerator(bits.CryptoSource{}),
		telemetry.NewEmitter(history),
	)

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Service:  service,
		History:  history,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
