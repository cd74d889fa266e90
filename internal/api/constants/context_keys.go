package constants

// Context keys for validated requests
const (
	ContextKeyLogin       = "login"
	ContextKeyCreateToken = "createToken"
)

// Context keys set by middleware
const (
	ContextKeyRequestID = "RequestID"
	ContextKeyUsername  = "username"
	ContextKeyRole      = "role"
	// ContextKeyAppCode holds the envelope code of the response written
	ContextKeyAppCode = "appCode"
)

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
