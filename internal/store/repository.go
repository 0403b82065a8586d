// Package store implements the credential store: the account model, the
// repository contract, and its Postgres and in-memory implementations.
package store

import "context"

// Repository is the credential-store contract. Every operation is atomic
// per call; there are no multi-account transactions.
//
// Implementations map driver-level conditions to the shared sentinels:
// a missing row becomes common.ErrorNotFound, a unique-constraint
// violation on email becomes common.ErrorAccountExists.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Insert(ctx context.Context, email, passwordHash string) error
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error
	UpdateTwoFactor(ctx context.Context, email string, enabled bool) error
	Delete(ctx context.Context, email string) error
}
