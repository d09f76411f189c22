package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User owns one or more accounts.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}

// IsValid reports whether the user carries the minimum required data.
func (u *User) IsValid() bool {
	return u != nil &&
		u.ID != "" &&
		u.Username != "" &&
		u.PasswordHash != "" &&
		strings.Contains(u.Email, "@")
}

// NewUser validates the input and builds a user with a generated ID.
// The username and email are trimmed and the email is lowercased.
func NewUser(username, passwordHash, email string) (*User, error) {
	return NewUserWithID(uuid.NewString(), username, passwordHash, email)
}

// NewUserWithID builds a user with a caller-provided ID, validating the same
// rules as NewUser.
func NewUserWithID(id, username, passwordHash, email string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "user ID must not be empty")
	}

	if strings.TrimSpace(username) == "" {
		return nil, NewValidationError("username", "username must not be empty")
	}

	if strings.TrimSpace(passwordHash) == "" {
		return nil, NewValidationError("passwordHash", "password hash must not be empty")
	}

	if !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "email must be valid")
	}

	user := &User{
		ID:           strings.TrimSpace(id),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		CreatedAt:    time.Now(),
	}

	if !user.IsValid() {
		return nil, NewValidationError("user", "user data is invalid")
	}

	return user, nil
}
