// Package api defines the response envelopes shared by all HTTP handlers.
package api

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms an operation that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MsgInternalError is the fixed body of every 500 response. Details go to the log only.
const MsgInternalError = "internal server error"
