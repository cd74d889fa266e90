package token

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the create-token body. Current clients send
// expiration, older ones expiredTime; both are lifetimes in hours and an
// absent value means permanent.
type CreateRequest struct {
	Expiration  *int `json:"expiration" binding:"omitempty,gte=0"`
	ExpiredTime *int `json:"expiredTime" binding:"omitempty,gte=0"`
}

// Hours returns the requested lifetime.
func (r CreateRequest) Hours() int {
	switch {
	case r.Expiration != nil:
		return *r.Expiration
	case r.ExpiredTime != nil:
		return *r.ExpiredTime
	default:
		return 0
	}
}

// Response describes a freshly issued token
type Response struct {
	Token     string    `json:"token"`
	ID        uuid.UUID `json:"id"`
	Hours     int       `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ListResponse represents a token in the list response without the sensitive token value
type ListResponse struct {
	ID        uuid.UUID `json:"id"`
	Owner     string    `json:"owner"`
	Hours     int       `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
