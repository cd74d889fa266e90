package mapper

import (
	"time"

	"github.com/google/uuid"
)

// Session is a logged-in console user
type Session struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	TokenHash string    `json:"-"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
}

// Principal is whoever a request authenticated as
type Principal struct {
	Username string
	Role     string
}

// PrincipalFromSession returns the principal of a session
func PrincipalFromSession(s *Session) Principal {
	return Principal{Username: s.Username, Role: s.Role}
}

// PrincipalFromToken returns the principal an access token acts as
func PrincipalFromToken(t *Token) Principal {
	return Principal{Username: t.Owner, Role: t.Role}
}
