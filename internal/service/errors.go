package service

import "errors"

// Sentinel errors for service layer
var (
	ErrValidation     = errors.New("validation error")
	ErrUserNotFound   = errors.New("user not exist")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrStoreOperation = errors.New("store operation failed")
)
