package panel

import "errors"

var (
	ErrNoExpiry      = errors.New("no expiration selected")
	ErrUnknownExpiry = errors.New("expiration is not an available option")
	ErrInFlight      = errors.New("token request already in flight")
	ErrAlreadyIssued = errors.New("token already issued")
	ErrNotIssued     = errors.New("no token issued yet")
	ErrNoClipboard   = errors.New("clipboard unavailable")
	ErrEmptyToken    = errors.New("server returned an empty token")
	// ErrReset is returned by a Submit whose result arrived after Reset.
	ErrReset = errors.New("panel was reset while the request was in flight")
)
