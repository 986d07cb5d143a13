package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

var (
	ErrAlreadyFavorite   = apperrors.New(apperrors.ErrConflict, "Item is already a favorite for the user.")
	ErrFavoriteNotFound  = apperrors.New(apperrors.ErrNotFound, "Favorite not found or doesn't belong to the authenticated user.")
	ErrMediaIDRequired   = apperrors.New(apperrors.ErrValidation, "mediaId is required")
	ErrMediaRateOutRange = apperrors.New(apperrors.ErrValidation, "mediaRate must be between 0 and 10")
)

// Counter is told about every favorite that was stored.
type Counter interface {
	FavoriteAdded()
}

type Service struct {
	repo    Repository
	counter Counter
	log     *logger.Logger
	now     func() time.Time
}

// NewService wires the ledger. counter may be nil.
func NewService(repo Repository, counter Counter, log *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		counter: counter,
		log:     log.With("component", "favorites"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// List always reads from the store.
func (s *Service) List(ctx context.Context, userID string) ([]Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add stores a favorite. A duplicate (user, media) pair is rejected by the
// store and reported as ErrAlreadyFavorite.
func (s *Service) Add(ctx context.Context, userID string, in AddInput) (*Favorite, error) {
	mediaID := strings.TrimSpace(in.MediaID)
	if mediaID == "" {
		return nil, ErrMediaIDRequired
	}
	if in.MediaRate < 0 || in.MediaRate > 10 {
		return nil, ErrMediaRateOutRange
	}

	fav := &Favorite{
		ID:          uuid.NewString(),
		UserID:      userID,
		MediaID:     mediaID,
		MediaTitle:  strings.TrimSpace(in.MediaTitle),
		MediaType:   strings.TrimSpace(in.MediaType),
		MediaPoster: strings.TrimSpace(in.MediaPoster),
		MediaRate:   in.MediaRate,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Insert(ctx, fav); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	if s.counter != nil {
		s.counter.FavoriteAdded()
	}
	s.log.InfoContext(ctx, "favorite added", "user_id", userID, "media_id", mediaID)
	return fav, nil
}

// Remove deletes the caller's favorite for mediaID. Entries owned by other
// users are indistinguishable from missing ones.
func (s *Service) Remove(ctx context.Context, userID, mediaID string) error {
	mediaID = strings.TrimSpace(mediaID)
	if mediaID == "" {
		return ErrMediaIDRequired
	}

	if err := s.repo.DeleteByMedia(ctx, userID, mediaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}
