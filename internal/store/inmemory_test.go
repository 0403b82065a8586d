package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

func TestInMemoryRepository_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))

	acc, err := r.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", acc.Email)
	assert.Equal(t, "hash1", acc.PasswordHash)
	assert.False(t, acc.TwoFactorEnabled)

	_, err = r.FindByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))
	err := r.Insert(ctx, "a@b.com", "hash2")
	assert.ErrorIs(t, err, common.ErrorAccountExists)

	// first write survives untouched
	acc, err := r.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "hash1", acc.PasswordHash)
}

func TestInMemoryRepository_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))
	require.NoError(t, r.UpdatePasswordHash(ctx, "a@b.com", "hash2"))

	acc, err := r.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "hash2", acc.PasswordHash)

	err = r.UpdatePasswordHash(ctx, "missing@b.com", "hash3")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_UpdateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))
	require.NoError(t, r.Insert(ctx, "c@d.com", "hash2"))

	err := r.UpdateEmail(ctx, "a@b.com", "c@d.com")
	assert.ErrorIs(t, err, common.ErrorAccountExists)

	require.NoError(t, r.UpdateEmail(ctx, "a@b.com", "x@y.com"))

	_, err = r.FindByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	acc, err := r.FindByEmail(ctx, "x@y.com")
	require.NoError(t, err)
	assert.Equal(t, "hash1", acc.PasswordHash)
}

func TestInMemoryRepository_UpdateTwoFactor(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))
	require.NoError(t, r.UpdateTwoFactor(ctx, "a@b.com", true))

	acc, err := r.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, acc.TwoFactorEnabled)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))
	require.NoError(t, r.Delete(ctx, "a@b.com"))

	_, err := r.FindByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.Delete(ctx, "a@b.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_FindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	require.NoError(t, r.Insert(ctx, "a@b.com", "hash1"))

	acc, err := r.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	acc.PasswordHash = "mutated"

	again, err := r.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "hash1", again.PasswordHash)
}
