package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
	"github.com/RahemShaikh/LoginSimulator/internal/notify"
)

// Purpose tags a one-time code with the flow it belongs to.
type Purpose string

const (
	PurposeTwoFactorLogin   Purpose = "2fa-login"
	PurposePasswordRecovery Purpose = "password-recovery"
)

const codeDigits = 6

// Challenge is the server-side half of an outstanding one-time-code
// exchange. It lives in memory only, is never persisted, and can be
// verified exactly once: the first Verify call consumes it whether or
// not the comparison succeeds.
type Challenge struct {
	ID        string
	Purpose   Purpose
	Email     string
	code      string
	expiresAt time.Time
	consumed  bool
	verified  bool
}

// Verified reports whether this challenge was consumed by a successful
// code submission.
func (ch *Challenge) Verified() bool {
	return ch.verified
}

// CodeService issues and verifies short-lived numeric codes delivered
// out-of-band. Issuing and delivering are one failable step: if the
// notifier reports an error, no challenge exists.
type CodeService struct {
	notifier notify.Notifier
	ttl      time.Duration

	// now is a test seam for expiry checks.
	now func() time.Time
}

func NewCodeService(notifier notify.Notifier, ttl time.Duration) *CodeService {
	return &CodeService{notifier: notifier, ttl: ttl, now: time.Now}
}

// Issue generates a fresh numeric code, dispatches it to the destination
// address, and returns the challenge handle retained for comparison.
func (s *CodeService) Issue(ctx context.Context, purpose Purpose, email string) (*Challenge, error) {

	code, err := common.RandomCode(codeDigits)
	if err != nil {
		return nil, fmt.Errorf("generating code: %w", err)
	}

	subject, body := messageFor(purpose, code)
	if err := s.notifier.Send(ctx, email, subject, body); err != nil {
		return nil, err
	}

	return &Challenge{
		ID:        uuid.NewString(),
		Purpose:   purpose,
		Email:     email,
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}, nil
}

// Verify compares input against the retained code. The challenge is
// consumed by the call regardless of the outcome; a wrong answer
// terminates the exchange and a new challenge must be issued to retry.
func (s *CodeService) Verify(ch *Challenge, input string) error {
	if ch == nil {
		return common.ErrAuthenticationFailed
	}
	if ch.consumed {
		return common.ErrCodeConsumed
	}
	ch.consumed = true

	if s.now().After(ch.expiresAt) {
		return common.ErrCodeExpired
	}
	if subtle.ConstantTimeCompare([]byte(ch.code), []byte(input)) != 1 {
		return common.ErrAuthenticationFailed
	}

	ch.verified = true
	return nil
}

func messageFor(purpose Purpose, code string) (subject, body string) {
	switch purpose {
	case PurposeTwoFactorLogin:
		return "Your Two Factor Authentication Code", "Two Factor Authentication Code: " + code
	default:
		return "Your Authentication Code", "Authentication Code: " + code
	}
}
