package domain

import (
	"net/mail"
	"time"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

// User is a registered account. The password hash never leaves the process:
// it is excluded from JSON and from PublicProfile.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicProfile is the community-visible view of a user, served by the
// public discovery endpoints.
type PublicProfile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the account down to its community-visible fields.
func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

// ValidateRegistration checks the fields of a registration request.
func ValidateRegistration(name, email, password string) error {
	if name == "" {
		return NewValidationError("name", "name is required")
	}
	if email == "" {
		return NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return NewValidationError("email", "email is malformed")
	}
	if password == "" {
		return NewValidationError("password", "password is required")
	}
	if len(password) < MinPasswordLength {
		return NewValidationError("password", "password must be at least 6 characters")
	}
	return nil
}
