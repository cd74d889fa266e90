package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/repository"
)

// Mock SessionRepository
type mockSessionRepository struct {
	repository.SessionRepository
	getByHashFunc func(ctx context.Context, hash string) (*mapper.Session, error)
	touchFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSessionRepository) GetByHash(ctx context.Context, hash string) (*mapper.Session, error) {
	return m.getByHashFunc(ctx, hash)
}

func (m *mockSessionRepository) Touch(ctx context.Context, id uuid.UUID) error {
	return m.touchFunc(ctx, id)
}

func newAuthService() (*AuthService, *TokenService) {
	tokens := NewTokenService(repository.NewTokenRepository())
	return NewAuthService(repository.NewSessionRepository(), tokens, "admin", "secret"), tokens
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, err := svc.Login(ctx, "nobody", "secret", "127.0.0.1", "test")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(ctx, "admin", "wrong", "127.0.0.1", "test")
	assert.ErrorIs(t, err, ErrWrongPassword)

	session, err := svc.Login(ctx, "admin", "secret", "127.0.0.1", "test")
	require.NoError(t, err)
	assert.NotEmpty(t, session)

	p, err := svc.Authenticate(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.Equal(t, "admin", p.Role)
}

func TestAuthenticateIssuedToken(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthService()

	session, err := svc.CreateSession(ctx, "viewer", "user", "", "")
	require.NoError(t, err)
	p, err := svc.Authenticate(ctx, session)
	require.NoError(t, err)

	issued, err := tokens.CreateToken(ctx, p, 24)
	require.NoError(t, err)

	p2, err := svc.Authenticate(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, p, p2)
}

func TestAuthenticateRejects(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, err := svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	session, err := svc.Login(ctx, "admin", "secret", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session))
	_, err = svc.Authenticate(ctx, session)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, svc.Logout(ctx, session), ErrInvalidToken)
}

func TestAuthenticateLogsTouchFailure(t *testing.T) {
	sessionID := uuid.New()
	repo := &mockSessionRepository{
		getByHashFunc: func(ctx context.Context, hash string) (*mapper.Session, error) {
			return &mapper.Session{ID: sessionID, Username: "admin", Role: "admin"}, nil
		},
		touchFunc: func(ctx context.Context, id uuid.UUID) error {
			return errors.New("store unavailable")
		},
	}

	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.Config{Level: logging.LevelWarn, Console: &buf})
	require.NoError(t, err)

	svc := NewAuthService(repo, NewTokenService(repository.NewTokenRepository()), "admin", "secret")
	svc.logger = logger

	p, err := svc.Authenticate(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.Contains(t, buf.String(), "Failed to update last use of session "+sessionID.String())
	assert.Contains(t, buf.String(), "store unavailable")
}
