package models

// Login actions accepted by POST login.
const (
	ActionRegister = "register"
	ActionLogin    = "login"
)

// Account is a dashboard user stored in the login table.
type Account struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Email is unique across all accounts.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password.
	// It is never serialized; only the login verification path reads it.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "login"
}

// LoginRequest is the body of POST login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Action   string `json:"action"`
}

// AccountUpdate carries the optional changes of PUT login/{id}.
// A nil field is left unchanged.
type AccountUpdate struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// IsEmpty reports whether the update changes nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.Email == nil && u.Password == nil
}
