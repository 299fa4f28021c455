package models

import "time"

// ResetToken is a single-use, time-bound credential that allows one password
// change for Email. A token is redeemable only while Used is false and
// ExpiresAt lies in the future; redeemed tokens are flagged, never deleted.
type ResetToken struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "reset_password"
}

// PasswordResetRequest is the body of POST reset_password.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConsume is the body of PUT reset_password.
type PasswordResetConsume struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
