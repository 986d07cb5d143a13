package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

type memRepo struct {
	mu      sync.Mutex
	byID    map[string]*User
	creates int
	failOn  error
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[string]*User{}}
}

func (r *memRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != nil {
		return r.failOn
	}
	for _, existing := range r.byID {
		if existing.NormalizedEmail == u.NormalizedEmail {
			return apperrors.ErrConflict
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.creates++
	return nil
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.NormalizedEmail == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memRepo) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) UpdatePassword(_ context.Context, id, hash string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = at
	return nil
}

// plainVerifier keeps tests fast; bcrypt has its own test.
type plainVerifier struct{}

func (plainVerifier) Hash(pw string) (string, error) { return "h:" + pw, nil }
func (plainVerifier) Verify(hash, pw string) (bool, error) {
	return hash == "h:"+pw, nil
}

type stubIssuer struct {
	gotUser, gotName string
}

func (s *stubIssuer) Issue(userID, username string) (string, time.Time, error) {
	s.gotUser, s.gotName = userID, username
	return "token-for-" + userID, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), nil
}

func newTestService() (*Service, *memRepo, *stubIssuer) {
	repo := newMemRepo()
	iss := &stubIssuer{}
	svc := NewService(repo, plainVerifier{}, iss, logger.Discard())
	return svc, repo, iss
}

func aliceInput() RegisterInput {
	return RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice",
		Password:  "Abc123!@",
		FirstName: "Alice",
	}
}

func TestRegister_ThenDuplicateAnyCase(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	profile, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)
	require.Equal(t, "alice@example.com", profile.Email)

	dup := aliceInput()
	dup.Email = "ALICE@Example.com"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrEmailTaken)
	require.ErrorIs(t, err, apperrors.ErrConflict)
	require.Equal(t, 1, repo.creates)
}

func TestRegister_WeakPasswordWritesNothing(t *testing.T) {
	svc, repo, _ := newTestService()

	for _, pw := range []string{"abc", "abc123!@", "ABC123!@", "Abcdef!@", "Abc12345"} {
		in := aliceInput()
		in.Password = pw
		_, err := svc.Register(context.Background(), in)
		require.ErrorIs(t, err, apperrors.ErrValidation, pw)
	}
	require.Equal(t, 0, repo.creates)
}

func TestRegister_RaceOnInsertIsConflict(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.failOn = apperrors.ErrConflict

	_, err := svc.Register(context.Background(), aliceInput())
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DerivesUsername(t *testing.T) {
	svc, _, _ := newTestService()
	in := aliceInput()
	in.Username = ""
	in.Email = "Bob.Smith+films@example.com"

	profile, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "bob.smithfilms", profile.Username)
}

func TestLogin(t *testing.T) {
	svc, _, iss := newTestService()
	ctx := context.Background()
	profile, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)

	tok, err := svc.Login(ctx, "Alice@example.com", "Abc123!@")
	require.NoError(t, err)
	require.Equal(t, "token-for-"+profile.ID, tok.Token)
	require.Equal(t, profile.ID, iss.gotUser)
	require.Equal(t, "alice", iss.gotName)

	_, err = svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, "bob@example.com", "Abc123!@")
	require.ErrorIs(t, err, ErrUserNotFound)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	profile, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, profile.ID, "nope", "Xyz789#$")
	require.ErrorIs(t, err, ErrBadCurrentPassword)

	err = svc.ChangePassword(ctx, profile.ID, "Abc123!@", "weak")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, svc.ChangePassword(ctx, profile.ID, "Abc123!@", "Xyz789#$"))

	_, err = svc.Login(ctx, "alice@example.com", "Abc123!@")
	require.ErrorIs(t, err, ErrBadCredentials)
	_, err = svc.Login(ctx, "alice@example.com", "Xyz789#$")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "missing", "Abc123!@", "Xyz789#$")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetProfile(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	profile, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, profile, got)

	_, err = svc.GetProfile(ctx, "missing")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfile_StoreFailurePassesThrough(t *testing.T) {
	svc := NewService(failingRepo{}, plainVerifier{}, &stubIssuer{}, logger.Discard())
	_, err := svc.GetProfile(context.Background(), "u-1")
	require.Error(t, err)
	require.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

type failingRepo struct{ Repository }

func (failingRepo) FindByID(context.Context, string) (*User, error) {
	return nil, errors.New("db error: connection reset")
}

func TestBcryptVerifier(t *testing.T) {
	v := NewBcryptVerifier(4)
	hash, err := v.Hash("Abc123!@")
	require.NoError(t, err)

	ok, err := v.Verify(hash, "Abc123!@")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.Verify(hash, "abc123!@")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = v.Verify("not-a-hash", "x")
	require.Error(t, err)
}
