// Command preflight checks that every backing service of the API is
// reachable with the current configuration.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xyz-asif/filmdeck/internal/config"
	"github.com/xyz-asif/filmdeck/internal/database"
	"github.com/xyz-asif/filmdeck/internal/pkg/omdb"
	"github.com/xyz-asif/filmdeck/internal/store"
)

type check struct {
	name string
	run  func(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ config:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !runChecks(ctx, os.Stdout, buildChecks(cfg)) {
		cancel()
		os.Exit(1)
	}
	fmt.Println("\n🎉 All systems ready!")
}

func buildChecks(cfg *config.Config) []check {
	checks := []check{{
		name: "store (" + cfg.Store.Driver + ")",
		run: func(ctx context.Context) error {
			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close(ctx)
			return st.Ping(ctx)
		},
	}}

	if cfg.Redis.URL != "" {
		checks = append(checks, check{
			name: "redis",
			run: func(ctx context.Context) error {
				rdb, err := database.NewRedis(cfg.Redis)
				if err != nil {
					return err
				}
				defer rdb.Close()
				return rdb.Ping(ctx)
			},
		})
	}

	checks = append(checks, check{
		name: "media catalog",
		run: func(ctx context.Context) error {
			client, err := omdb.NewClient(omdb.Config{
				BaseURL: cfg.Catalog.BaseURL,
				APIKey:  cfg.Catalog.APIKey,
				Timeout: cfg.Catalog.Timeout,
			})
			if err != nil {
				return err
			}
			return client.Ping(ctx)
		},
	})
	return checks
}

// runChecks prints one line per check and reports whether all passed.
func runChecks(ctx context.Context, w io.Writer, checks []check) bool {
	ok := true
	for _, c := range checks {
		if err := c.run(ctx); err != nil {
			fmt.Fprintf(w, "❌ %s: %v\n", c.name, err)
			ok = false
			continue
		}
		fmt.Fprintf(w, "✅ %s\n", c.name)
	}
	return ok
}
