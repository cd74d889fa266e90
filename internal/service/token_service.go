package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/token"
	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/repository"
)

type TokenService struct {
	tokenRepo repository.TokenRepository
	now       func() time.Time
}

func NewTokenService(tokenRepo repository.TokenRepository) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		now:       time.Now,
	}
}

// CreateToken issues a token acting as owner. A lifetime of 0 hours is
// permanent and recorded as 99 years. Expiry is recorded, not enforced.
func (s *TokenService) CreateToken(ctx context.Context, owner mapper.Principal, hours int) (*token.Response, error) {
	if hours < 0 {
		return nil, fmt.Errorf("%w: negative expiration %d", ErrValidation, hours)
	}
	if hours == 0 {
		hours = expiry.PermanentHours
	}

	plainToken, tokenHash, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	tokenRecord := &mapper.Token{
		ID:         uuid.New(),
		Owner:      owner.Username,
		Role:       owner.Role,
		TokenHash:  tokenHash,
		Hours:      hours,
		CreatedAt:  now,
		LastUsedAt: now,
		ExpiresAt:  now.Add(time.Duration(hours) * time.Hour),
	}

	if err := s.tokenRepo.Create(ctx, tokenRecord); err != nil {
		return nil, fmt.Errorf("%w: failed to create token: %v", ErrStoreOperation, err)
	}

	return mapper.ToTokenResponse(tokenRecord, plainToken), nil
}

func (s *TokenService) ListTokens(ctx context.Context, owner string) ([]*token.ListResponse, error) {
	tokens, err := s.tokenRepo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreOperation, err)
	}
	return mapper.ToTokenListResponses(tokens), nil
}

func (s *TokenService) RevokeToken(ctx context.Context, id uuid.UUID) error {
	return s.tokenRepo.Revoke(ctx, id)
}

// ValidateToken resolves a presented access token.
func (s *TokenService) ValidateToken(ctx context.Context, tokenStr string) (*mapper.Token, error) {
	tokenRecord, err := s.tokenRepo.GetByHash(ctx, hashToken(tokenStr))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if tokenRecord.RevokedAt != nil {
		return nil, ErrTokenRevoked
	}

	if err := s.tokenRepo.UpdateLastUsed(ctx, tokenRecord.ID); err != nil {
		return nil, fmt.Errorf("failed to update last used time: %w", err)
	}

	return tokenRecord, nil
}

// generateToken returns a random URL-safe token and the hash it is stored under
func generateToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}
	plainToken := base64.RawURLEncoding.EncodeToString(tokenBytes)
	return plainToken, hashToken(plainToken), nil
}

func hashToken(plain string) string {
	hash := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(hash[:])
}
