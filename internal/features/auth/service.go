package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

var (
	ErrEmailTaken = apperrors.New(apperrors.ErrConflict, "User already exists!")
	// ErrUserNotFound and ErrBadCredentials both match apperrors.ErrUnauthorized
	// so callers can answer them identically.
	ErrUserNotFound       = apperrors.New(apperrors.ErrUnauthorized, "user does not exist")
	ErrBadCredentials     = apperrors.New(apperrors.ErrUnauthorized, "wrong password")
	ErrBadCurrentPassword = apperrors.New(apperrors.ErrValidation, "Wrong password.")
	ErrProfileNotFound    = apperrors.New(apperrors.ErrNotFound, "User not found.")
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, username string) (string, time.Time, error)
}

type Service struct {
	repo     Repository
	verifier CredentialVerifier
	issuer   TokenIssuer
	log      *logger.Logger
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewService(repo Repository, verifier CredentialVerifier, issuer TokenIssuer, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
		issuer:   issuer,
		log:      log.With("component", "auth"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an identity. Validation and the duplicate check both
// happen before the insert.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Profile, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := ValidateRegister(&in); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	hash, err := s.verifier.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	username := in.Username
	if username == "" {
		username = UsernameFromEmail(in.Email)
	}

	now := s.now()
	user := &User{
		ID:              uuid.NewString(),
		Email:           in.Email,
		NormalizedEmail: normalizeEmail(in.Email),
		Username:        username,
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		PasswordHash:    hash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user.ToProfile(), nil
}

// Login verifies the credentials and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// keep the unknown-email path as slow as a real check
			_, _ = s.verifier.Verify(s.placeholderHash(), password)
			s.log.InfoContext(ctx, "sign in failed", "reason", "unknown email")
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ok, err := s.verifier.Verify(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.log.InfoContext(ctx, "sign in failed", "reason", "wrong password", "user_id", user.ID)
		return nil, ErrBadCredentials
	}

	token, expiresAt, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &TokenResponse{Token: token, Expiration: expiresAt}, nil
}

// ChangePassword checks the current password before replacing it.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	ok, err := s.verifier.Verify(user.PasswordHash, current)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return ErrBadCurrentPassword
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}

	hash, err := s.verifier.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, userID, hash, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user.ToProfile(), nil
}

func (s *Service) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.verifier.Hash(uuid.NewString())
	})
	return s.dummyHash
}
