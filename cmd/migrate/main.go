// Command migrate applies the schema for the configured store driver and exits.
package main

import (
	"context"
	"os"
	"time"

	"github.com/xyz-asif/filmdeck/internal/config"
	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	"github.com/xyz-asif/filmdeck/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level), cfg.Log.Format)

	if err := run(cfg); err != nil {
		log.Fatal("Migration failed", "driver", cfg.Store.Driver, "error", err)
	}
	log.Info("Migration complete", "driver", cfg.Store.Driver)
}

func run(cfg *config.Config) error {
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return st.Migrate(ctx)
}
