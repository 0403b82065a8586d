package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

// UpdatePassword drives the update-password page for the logged-in user.
func (a *App) UpdatePassword(ctx context.Context) error {
	printHeading(a.out, "UPDATE PASSWORD PAGE")

	newPassword, err := a.promptNewPassword("New Password: ")
	if err != nil {
		return err
	}

	if err := a.core.ChangePassword(ctx, a.session, newPassword); err != nil {
		a.logger.Error(ctx, "password update failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
		return nil
	}

	fmt.Fprintln(a.out, "Password is now updated.")
	return nil
}

// ChangeEmail drives the change-email page. A collision with another
// account leaves the session identity unchanged.
func (a *App) ChangeEmail(ctx context.Context) error {
	printHeading(a.out, "CHANGE EMAIL PAGE")

	newEmail, err := a.promptEmail("New E-Mail: ")
	if err != nil {
		return err
	}

	err = a.core.ChangeEmail(ctx, a.session, newEmail)
	switch {
	case errors.Is(err, common.ErrorAccountExists):
		fmt.Fprintln(a.out, "Email is already associated with another account. Returning to logged in page.")
	case err != nil:
		a.logger.Error(ctx, "email change failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
	default:
		fmt.Fprintln(a.out, "Email updated successfully!")
	}

	return nil
}

// DeleteAccount drives the delete-account page: explicit confirmation,
// then one more password check. It reports whether the account is gone,
// which sends the REPL back to the start page.
func (a *App) DeleteAccount(ctx context.Context) (bool, error) {
	printHeading(a.out, "DELETE ACCOUNT PAGE")

	confirmed, err := getConfirmation(a.reader, "ARE YOU SURE YOU WANT TO DELETE YOUR ACCOUNT? Y/N: ", a.out)
	if err != nil {
		return false, err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "You changed your mind. Returning to logged in page.")
		return false, nil
	}

	pw, err := getPassword("Password: ", a.out)
	if err != nil {
		return false, err
	}
	password := string(pw)
	common.WipeByteArray(pw)

	err = a.core.DeleteAccount(ctx, a.session, password)
	switch {
	case errors.Is(err, common.ErrAuthenticationFailed):
		fmt.Fprintln(a.out, "Incorrect password. Returning to logged in page.")
		return false, nil
	case err != nil:
		a.logger.Error(ctx, "account deletion failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
		return false, nil
	}

	fmt.Fprintln(a.out, "Password accepted. Terminating account...")
	fmt.Fprintln(a.out, "I hope you make another account with us :(")
	return true, nil
}

// TwoFactor drives the 2FA enrollment page. Enabling is idempotent.
func (a *App) TwoFactor(ctx context.Context) error {
	printHeading(a.out, "2-FA PAGE")

	confirmed, err := getConfirmation(a.reader, "Do you want to enable Two Factor Authentication? Y/N: ", a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "You changed your mind. Returning to logged in page.")
		return nil
	}

	already, err := a.core.EnableTwoFactor(ctx, a.session)
	if err != nil {
		a.logger.Error(ctx, "2fa enrollment failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
		return nil
	}
	if already {
		fmt.Fprintln(a.out, "Two Factor Authentication is already enabled. Returning to logged in page.")
		return nil
	}

	fmt.Fprintln(a.out, "Enabling 2-FA...")
	fmt.Fprintln(a.out, "2-FA is officially active.")
	return nil
}

// Logout clears the session.
func (a *App) Logout() {
	a.core.Logout(a.session)
}
