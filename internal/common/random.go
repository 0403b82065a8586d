package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomCode generates a random numeric string of exactly n digits,
// zero-padded on the left. The value is drawn from crypto/rand.
//
// Example:
//
//	code, err := RandomCode(6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(code) // e.g., "049313"
//
// It returns an error if the random number generator fails.
func RandomCode(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)

	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", n, v), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as passwords from memory
// after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
