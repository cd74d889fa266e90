package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/token"
)

// Token represents the domain model for issued access tokens
type Token struct {
	ID         uuid.UUID  `json:"id"`
	Owner      string     `json:"owner"`
	Role       string     `json:"role"`
	TokenHash  string     `json:"-"`
	Hours      int        `json:"hours"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt time.Time  `json:"last_used_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

// ToTokenResponse converts a domain Token to a Response DTO
func ToTokenResponse(t *Token, plainToken string) *token.Response {
	return &token.Response{
		Token:     plainToken,
		ID:        t.ID,
		Hours:     t.Hours,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}

// ToTokenListResponse converts a domain Token to a ListResponse DTO
func ToTokenListResponse(t *Token) *token.ListResponse {
	return &token.ListResponse{
		ID:        t.ID,
		Owner:     t.Owner,
		Hours:     t.Hours,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}

// ToTokenListResponses converts a slice of domain Tokens to ListResponse DTOs
func ToTokenListResponses(tokens []*Token) []*token.ListResponse {
	result := make([]*token.ListResponse, len(tokens))
	for i, t := range tokens {
		result[i] = ToTokenListResponse(t)
	}
	return result
}
