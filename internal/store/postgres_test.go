package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

type fakePgError struct{ code string }

func (e *fakePgError) Error() string    { return "pg error " + e.code }
func (e *fakePgError) SQLState() string { return e.code }

func Test_isUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&fakePgError{code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("db error: %w", &fakePgError{code: "23505"})))
	assert.False(t, isUniqueViolation(&fakePgError{code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
	assert.False(t, isUniqueViolation(nil))
}

func Test_mapDBError(t *testing.T) {
	assert.ErrorIs(t, mapDBError(&fakePgError{code: "23505"}), common.ErrorAccountExists)

	driverErr := &fakePgError{code: "23503"}
	err := mapDBError(driverErr)
	assert.NotErrorIs(t, err, common.ErrorAccountExists)
	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "db error")
}
