package client

import (
	"errors"
	"fmt"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
)

var (
	// ErrUnauthorized matches responses rejecting the session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden matches responses refusing the action for this user.
	ErrForbidden = errors.New("forbidden")
)

// Error describes a failed API call. Status is the HTTP status; Code and
// Message come from the response envelope when one was decoded.
type Error struct {
	Op      string
	Status  int
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("%s: code %d", e.Op, e.Code)
	default:
		return fmt.Sprintf("%s: http status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == common.CodeTokenFail
	case ErrForbidden:
		return e.Code == common.CodeSoftFail
	}
	return false
}
