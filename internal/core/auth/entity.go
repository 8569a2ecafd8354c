package auth

import (
	"fmt"
	"strings"
	"time"

	"terraweave.app/pkg/validation"
)

// Login outcomes reported to metrics
const (
	OutcomeSuccess        = "success"
	OutcomeInvalid        = "invalid_credentials"
	OutcomeBadRequest     = "bad_request"
	OutcomeInternalFailed = "error"
)

// Credentials is an email/password login attempt
type Credentials struct {
	Email    string
	Password string
}

// IsValid validates credentials
func (c *Credentials) IsValid() error {
	if !validation.IsNotEmpty(c.Email) {
		return fmt.Errorf("email is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Normalize trims and lowercases the email
func (c *Credentials) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

// User is the public profile of a login record
type User struct {
	ID           uint
	Email        string
	Name         string
	Organization string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Result is the outcome of a successful authentication
type Result struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
