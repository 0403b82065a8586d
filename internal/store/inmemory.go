package store

import (
	"context"
	"sync"
	"time"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the simulator without a database. It enforces the same email
// uniqueness and sentinel mapping as the Postgres implementation.
type InMemoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{accounts: make(map[string]*Account)}
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	cp := *acc
	return &cp, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[email]; ok {
		return common.ErrorAccountExists
	}

	r.accounts[email] = &Account{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (r *InMemoryRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[email]
	if !ok {
		return common.ErrorNotFound
	}

	acc.PasswordHash = passwordHash
	return nil
}

func (r *InMemoryRepository) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[oldEmail]
	if !ok {
		return common.ErrorNotFound
	}
	if _, taken := r.accounts[newEmail]; taken && newEmail != oldEmail {
		return common.ErrorAccountExists
	}

	delete(r.accounts, oldEmail)
	acc.Email = newEmail
	r.accounts[newEmail] = acc
	return nil
}

func (r *InMemoryRepository) UpdateTwoFactor(ctx context.Context, email string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[email]
	if !ok {
		return common.ErrorNotFound
	}

	acc.TwoFactorEnabled = enabled
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[email]; !ok {
		return common.ErrorNotFound
	}

	delete(r.accounts, email)
	return nil
}
