package models

// MessageResponse is the generic {"message": ...} body used for errors and
// simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse acknowledges a write on a single record.
type IDResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// AccountCreatedResponse is returned by a successful registration.
type AccountCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Email   string `json:"email"`
}

// LoginResponse is returned by the login action. No session or token is
// issued; the client keeps its own authenticated flag.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ResetTokenResponse is returned when a reset token was issued.
// Token is filled only when token echoing is enabled in configuration.
type ResetTokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// BuildInfoResponse exposes the build metadata of the running server.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
