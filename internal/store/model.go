package store

import "time"

// Account is the persisted credential record for a single e-mail address.
// The password hash is an opaque bcrypt digest with its salt embedded;
// plaintext never reaches the store.
type Account struct {
	Email            string
	PasswordHash     string
	TwoFactorEnabled bool
	CreatedAt        time.Time
}
