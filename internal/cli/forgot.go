package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

// ForgotPassword drives the recovery page: a code goes to the given
// address, and only a correct submission unlocks the new-password prompt.
// Unknown addresses and wrong codes leave every account untouched.
func (a *App) ForgotPassword(ctx context.Context) error {
	printHeading(a.out, "FORGOT PASSWORD PAGE")

	email, err := getSimpleText(a.reader, "E-Mail: ", a.out)
	if err != nil {
		return err
	}

	ch, err := a.core.BeginPasswordReset(ctx, email)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "E-Mail does not exist within database. Going back to main menu")
		return nil
	case errors.Is(err, common.ErrorDelivery):
		fmt.Fprintln(a.out, "Could not send the authentication code. Try again later.")
		return nil
	case err != nil:
		a.logger.Error(ctx, "password reset failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
		return nil
	}

	fmt.Fprintln(a.out, "Authentication code sent. Check your E-Mail.")

	code, err := getSimpleText(a.reader, "Code: ", a.out)
	if err != nil {
		return err
	}
	if err := a.core.SubmitResetCode(ctx, ch, code); err != nil {
		fmt.Fprintln(a.out, "Authentication failed. Going back to main menu")
		return nil
	}
	fmt.Fprintln(a.out, "Authentication successful")

	newPassword, err := a.promptNewPassword("New Password: ")
	if err != nil {
		return err
	}

	if err := a.core.CompletePasswordReset(ctx, ch, newPassword); err != nil {
		a.logger.Error(ctx, "password reset failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
		return nil
	}

	fmt.Fprintln(a.out, "Password is now updated.")
	return nil
}
