package favorites

import (
	"context"
	"fmt"

	"github.com/xyz-asif/filmdeck/internal/database"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

type PostgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	query :=
		`SELECT id, user_id, media_id, media_title, media_type, media_poster, media_rate, created_at
		 FROM favorites
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	favs := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.MediaID, &f.MediaTitle, &f.MediaType,
			&f.MediaPoster, &f.MediaRate, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return favs, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, fav *Favorite) error {
	query :=
		`INSERT INTO favorites (id, user_id, media_id, media_title, media_type, media_poster, media_rate, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		fav.ID, fav.UserID, fav.MediaID, fav.MediaTitle, fav.MediaType,
		fav.MediaPoster, fav.MediaRate, fav.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("favorite %s: %w", fav.MediaID, apperrors.ErrConflict)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByMedia(ctx context.Context, userID, mediaID string) error {
	query :=
		`DELETE FROM favorites
		 WHERE user_id = $1 AND media_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, userID, mediaID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
