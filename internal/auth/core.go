package auth

import (
	"context"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
	"github.com/RahemShaikh/LoginSimulator/internal/logging"
	"github.com/RahemShaikh/LoginSimulator/internal/store"
)

// Core orchestrates the credential lifecycle: account creation, login with
// an optional two-factor challenge, password recovery, credential changes,
// 2FA enrollment, and account deletion. It composes the credential store,
// the password hasher, and the one-time-code service; every operation
// receives the session it acts on.
type Core struct {
	store  store.Repository
	hasher *PasswordHasher
	codes  *CodeService
	logger logging.Logger
}

func NewCore(repo store.Repository, codes *CodeService, logger logging.Logger) *Core {
	return &Core{
		store:  repo,
		hasher: NewPasswordHasher(),
		codes:  codes,
		logger: logger.With("component", "auth"),
	}
}

// Register creates a new account. The e-mail must be syntactically valid
// and the password non-empty; a taken e-mail yields ErrorAccountExists
// with no partial write.
func (c *Core) Register(ctx context.Context, email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := c.store.Insert(ctx, email, hash); err != nil {
		return err
	}

	c.logger.Info(ctx, "account created", "email", email)
	return nil
}

// Login verifies credentials. An unknown e-mail yields ErrorNotFound and
// a wrong password ErrAuthenticationFailed; in both cases the session
// stays anonymous. With 2FA disabled the session becomes authenticated
// and the returned challenge is nil. With 2FA enabled a code is issued
// (nothing is considered issued if delivery fails), the session moves to
// awaiting-2fa, and the challenge is returned.
func (c *Core) Login(ctx context.Context, s *Session, email, password string) (*Challenge, error) {
	acc, err := c.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !c.hasher.Verify(password, acc.PasswordHash) {
		c.logger.Warn(ctx, "login failed", "email", email)
		return nil, common.ErrAuthenticationFailed
	}

	if !acc.TwoFactorEnabled {
		s.authenticate(acc.Email)
		c.logger.Info(ctx, "login", "email", acc.Email)
		return nil, nil
	}

	ch, err := c.codes.Issue(ctx, PurposeTwoFactorLogin, acc.Email)
	if err != nil {
		return nil, err
	}

	s.awaitCode(acc.Email, ch)
	return ch, nil
}

// SubmitCode completes a pending two-factor login. On a match the session
// becomes authenticated; on a mismatch or an expired code the challenge is
// discarded and the session drops back to anonymous, so a retry needs a
// fresh login.
func (c *Core) SubmitCode(ctx context.Context, s *Session, input string) error {
	if s.State() != StateAwaitingTwoFactor || s.pending == nil {
		return common.ErrNotAuthenticated
	}

	ch := s.pending
	if err := c.codes.Verify(ch, input); err != nil {
		c.logger.Warn(ctx, "2fa failed", "email", ch.Email)
		s.reset()
		return err
	}

	s.authenticate(ch.Email)
	c.logger.Info(ctx, "login", "email", ch.Email, "two_fa", true)
	return nil
}

// Logout clears the session.
func (c *Core) Logout(s *Session) {
	s.reset()
}

// ChangePassword replaces the authenticated user's password.
func (c *Core) ChangePassword(ctx context.Context, s *Session, newPassword string) error {
	if !s.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := c.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := c.store.UpdatePasswordHash(ctx, s.Email(), hash); err != nil {
		return err
	}

	c.logger.Info(ctx, "password updated", "email", s.Email())
	return nil
}

// ChangeEmail rebinds the account to a new address. A taken address
// yields ErrorAccountExists and the session identity is unchanged; on
// success the session follows the new address.
func (c *Core) ChangeEmail(ctx context.Context, s *Session, newEmail string) error {
	if !s.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if err := ValidateEmail(newEmail); err != nil {
		return err
	}

	if err := c.store.UpdateEmail(ctx, s.Email(), newEmail); err != nil {
		return err
	}

	c.logger.Info(ctx, "email updated", "old", s.Email(), "new", newEmail)
	s.email = newEmail
	return nil
}

// EnableTwoFactor turns on the two-factor flag. The operation is
// idempotent: if the flag is already set, already=true comes back and
// nothing is written.
func (c *Core) EnableTwoFactor(ctx context.Context, s *Session) (already bool, err error) {
	if !s.IsAuthenticated() {
		return false, common.ErrNotAuthenticated
	}

	acc, err := c.store.FindByEmail(ctx, s.Email())
	if err != nil {
		return false, err
	}
	if acc.TwoFactorEnabled {
		return true, nil
	}

	if err := c.store.UpdateTwoFactor(ctx, s.Email(), true); err != nil {
		return false, err
	}

	c.logger.Info(ctx, "2fa enabled", "email", s.Email())
	return false, nil
}

// DeleteAccount verifies the password once more and, on success, removes
// the account and resets the session. On failure the session stays
// authenticated and the account untouched.
func (c *Core) DeleteAccount(ctx context.Context, s *Session, password string) error {
	if !s.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}

	acc, err := c.store.FindByEmail(ctx, s.Email())
	if err != nil {
		return err
	}
	if !c.hasher.Verify(password, acc.PasswordHash) {
		return common.ErrAuthenticationFailed
	}

	if err := c.store.Delete(ctx, s.Email()); err != nil {
		return err
	}

	c.logger.Info(ctx, "account deleted", "email", s.Email())
	s.reset()
	return nil
}

// BeginPasswordReset starts the recovery flow. An unregistered e-mail
// yields ErrorNotFound and nothing is sent; otherwise a recovery code is
// issued to the address and the challenge returned.
func (c *Core) BeginPasswordReset(ctx context.Context, email string) (*Challenge, error) {
	if _, err := c.store.FindByEmail(ctx, email); err != nil {
		return nil, err
	}
	return c.codes.Issue(ctx, PurposePasswordRecovery, email)
}

// SubmitResetCode checks the submitted recovery code, consuming the
// challenge. A wrong answer ends the exchange; the caller must begin a
// new reset to retry.
func (c *Core) SubmitResetCode(ctx context.Context, ch *Challenge, input string) error {
	if ch == nil {
		return common.ErrAuthenticationFailed
	}
	if err := c.codes.Verify(ch, input); err != nil {
		c.logger.Warn(ctx, "password reset code rejected", "email", ch.Email)
		return err
	}
	return nil
}

// CompletePasswordReset stores a new password for a challenge that passed
// SubmitResetCode. Any failure leaves the account untouched.
func (c *Core) CompletePasswordReset(ctx context.Context, ch *Challenge, newPassword string) error {
	if ch == nil || ch.Purpose != PurposePasswordRecovery || !ch.Verified() {
		return common.ErrAuthenticationFailed
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := c.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := c.store.UpdatePasswordHash(ctx, ch.Email, hash); err != nil {
		return err
	}

	c.logger.Info(ctx, "password reset", "email", ch.Email)
	return nil
}
