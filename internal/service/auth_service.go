package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/repository"
)

// AuthService logs in the single configured console user and resolves the
// credentials presented on API calls.
type AuthService struct {
	sessionRepo   repository.SessionRepository
	tokenService  *TokenService
	adminUser     string
	adminPassword string
	logger        *logging.Logger
}

func NewAuthService(sessionRepo repository.SessionRepository, tokenService *TokenService, adminUser, adminPassword string) *AuthService {
	return &AuthService{
		sessionRepo:   sessionRepo,
		tokenService:  tokenService,
		adminUser:     adminUser,
		adminPassword: adminPassword,
		logger:        logging.GetGlobalLogger(),
	}
}

// Login checks the credentials and returns a new session token.
func (s *AuthService) Login(ctx context.Context, username, password, ip, userAgent string) (string, error) {
	if username != s.adminUser {
		return "", ErrUserNotFound
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrWrongPassword
	}
	return s.CreateSession(ctx, username, constants.RoleAdmin, ip, userAgent)
}

// CreateSession opens a session for username with the given role.
func (s *AuthService) CreateSession(ctx context.Context, username, role, ip, userAgent string) (string, error) {
	plainToken, tokenHash, err := generateToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &mapper.Session{
		ID:        uuid.New(),
		Username:  username,
		Role:      role,
		TokenHash: tokenHash,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: now,
		LastUsed:  now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("%w: failed to create session: %v", ErrStoreOperation, err)
	}
	return plainToken, nil
}

// Authenticate resolves a session token or an issued access token.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (mapper.Principal, error) {
	if tokenStr == "" {
		return mapper.Principal{}, ErrInvalidToken
	}

	session, err := s.sessionRepo.GetByHash(ctx, hashToken(tokenStr))
	if err == nil {
		if err := s.sessionRepo.Touch(ctx, session.ID); err != nil {
			// The session still works but may be reaped as idle
			s.logger.Warn("Failed to update last use of session %s: %v", session.ID, err)
		}
		return mapper.PrincipalFromSession(session), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return mapper.Principal{}, err
	}

	tokenRecord, err := s.tokenService.ValidateToken(ctx, tokenStr)
	if err != nil {
		return mapper.Principal{}, err
	}
	return mapper.PrincipalFromToken(tokenRecord), nil
}

// Logout ends the session identified by tokenStr.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	session, err := s.sessionRepo.GetByHash(ctx, hashToken(tokenStr))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return s.sessionRepo.Delete(ctx, session.ID)
}
