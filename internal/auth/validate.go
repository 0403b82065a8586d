package auth

import (
	"fmt"
	"regexp"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the syntax of an e-mail address. It is a pure
// function; reprompting on failure belongs to the caller.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid e-mail syntax", common.ErrorValidation)
	}
	return nil
}

// ValidatePassword checks that a password is non-empty.
func ValidatePassword(password string) error {
	if len(password) == 0 {
		return fmt.Errorf("%w: password must not be empty", common.ErrorValidation)
	}
	return nil
}
