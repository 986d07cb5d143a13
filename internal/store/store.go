// Package store opens the configured persistence backend and hands out the
// repositories built on it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xyz-asif/filmdeck/internal/config"
	"github.com/xyz-asif/filmdeck/internal/database"
	"github.com/xyz-asif/filmdeck/internal/features/auth"
	"github.com/xyz-asif/filmdeck/internal/features/favorites"
	"github.com/xyz-asif/filmdeck/internal/features/queries"
)

type Store struct {
	Driver    string
	Users     auth.Repository
	Favorites favorites.Repository
	Queries   queries.Repository

	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Open connects to the backend named by cfg.Store.Driver. It does not migrate.
func Open(cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.OpenPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return NewPostgres(db), nil
	case config.DriverMongo:
		m, err := database.ConnectMongo(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return NewMongo(m), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func NewPostgres(db *sql.DB) *Store {
	return &Store{
		Driver:    config.DriverPostgres,
		Users:     auth.NewPostgresRepository(db),
		Favorites: favorites.NewPostgresRepository(db),
		Queries:   queries.NewPostgresRepository(db),
		ping:      db.PingContext,
		migrate:   func(ctx context.Context) error { return database.MigratePostgres(ctx, db) },
		close:     func(context.Context) error { return db.Close() },
	}
}

func NewMongo(m *database.MongoDB) *Store {
	return &Store{
		Driver:    config.DriverMongo,
		Users:     auth.NewMongoRepository(m.Database),
		Favorites: favorites.NewMongoRepository(m.Database),
		Queries:   queries.NewMongoRepository(m.Database),
		ping:      m.Ping,
		migrate:   func(ctx context.Context) error { return database.MigrateMongo(ctx, m.Database) },
		close:     m.Disconnect,
	}
}

func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// Migrate creates or upgrades the schema and the unique indexes the
// repositories rely on.
func (s *Store) Migrate(ctx context.Context) error { return s.migrate(ctx) }

func (s *Store) Close(ctx context.Context) error { return s.close(ctx) }
