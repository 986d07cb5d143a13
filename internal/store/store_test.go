package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/filmdeck/internal/config"
	"github.com/xyz-asif/filmdeck/internal/features/auth"
	"github.com/xyz-asif/filmdeck/internal/features/favorites"
	"github.com/xyz-asif/filmdeck/internal/features/queries"
)

func TestNewPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	s := NewPostgres(db)
	require.Equal(t, config.DriverPostgres, s.Driver)
	require.IsType(t, &auth.PostgresRepository{}, s.Users)
	require.IsType(t, &favorites.PostgresRepository{}, s.Favorites)
	require.IsType(t, &queries.PostgresRepository{}, s.Queries)

	mock.ExpectPing()
	require.NoError(t, s.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	require.Error(t, s.Ping(context.Background()))

	mock.ExpectClose()
	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{Store: config.StoreConfig{Driver: "sqlite"}})
	require.ErrorContains(t, err, "unsupported store driver")
}

func TestOpen_PostgresNeedsURL(t *testing.T) {
	_, err := Open(&config.Config{Store: config.StoreConfig{Driver: config.DriverPostgres}})
	require.Error(t, err)
}
