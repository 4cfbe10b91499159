package auth

import (
	"fmt"
	"os"
)

const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
)

// Credentials is the single fixed credential pair gating access. Only the
// password hash is kept in memory after construction.
type Credentials struct {
	username     string
	passwordHash string
}

// LoadCredentials builds the gate from QUOTEGEN_USERNAME and
// QUOTEGEN_PASSWORD, falling back to the built-in pair. The plaintext
// password is hashed immediately and discarded.
func LoadCredentials() (*Credentials, error) {
	username := os.Getenv("QUOTEGEN_USERNAME")
	if username == "" {
		username = defaultUsername
	}
	password := os.Getenv("QUOTEGEN_PASSWORD")
	if password == "" {
		password = defaultPassword
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}

	return &Credentials{username: username, passwordHash: hash}, nil
}

// Verify reports whether the supplied pair matches the fixed credential.
func (c *Credentials) Verify(username, password string) bool {
	if username != c.username {
		// Burn a comparison regardless of which half mismatched.
		_, _ = verifyPassword(password, c.passwordHash)
		return false
	}
	ok, err := verifyPassword(password, c.passwordHash)
	return err == nil && ok
}
