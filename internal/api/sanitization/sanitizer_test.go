package sanitization

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"admin", "admin"},
		{"  admin  ", "admin"},
		{"ad\x00min", "admin"},
		{"John   Doe", "John Doe"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeUsername(tt.in))
	}
}

func TestSanitizeLogValue(t *testing.T) {
	assert.Equal(t, "a b", SanitizeLogValue("a\nb"))
	assert.Equal(t, "ab", SanitizeLogValue("a\x1bb"))

	long := SanitizeLogValue(strings.Repeat("x", 200))
	assert.Len(t, long, 131)
}
