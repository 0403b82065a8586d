// Package auth implements the authentication core: password hashing,
// one-time codes, the session object, input validators, and the Core
// orchestrator that ties them to the credential store and notifier.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and verifies salted bcrypt digests. Each call
// to Hash generates a fresh salt, so no separate salt storage is needed
// and hashing the same password twice yields different digests.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches the stored digest. A malformed
// digest is reported as a mismatch, never as an error.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
