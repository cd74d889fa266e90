package common

import "encoding/json"

// APIResponse is the envelope of every API response. The transport status
// is always 200; the outcome is carried in Code.
type APIResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// RawResponse is APIResponse with the payload left undecoded.
type RawResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ValidationError represents a validation error detail
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Application codes carried in the envelope
const (
	CodeOK          = 200
	CodeSoftFail    = 201 // request understood, action refused or failed
	CodeBadRequest  = 400
	CodeTokenFail   = 420 // missing or invalid token header
	CodeRateLimited = 429
	CodeServerError = 500
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeOK,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
