package common

// Keys under which the session is persisted in the credential store.
const (
	TokenStorageKey   = "auth_token"
	ProfileStorageKey = "user_profile"
)

// HTTP header names set by the request dispatcher.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)
