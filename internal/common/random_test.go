package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCode(t *testing.T) {
	for _, n := range []int{1, 4, 6} {
		code, err := RandomCode(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q", r)
		}
	}
}

func TestRandomCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		code, err := RandomCode(6)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "expected different codes across calls")
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	for _, v := range b {
		assert.Zero(t, v)
	}

	WipeByteArray(nil) // must not panic
}
