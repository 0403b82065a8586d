package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

// Register drives the create-account page: prompt for credentials,
// reprompt until both validate, then ask the core to create the account.
func (a *App) Register(ctx context.Context) error {
	printHeading(a.out, "CREATE ACCOUNT PAGE")

	email, err := a.promptEmail("E-Mail for registration: ")
	if err != nil {
		return err
	}

	password, err := a.promptNewPassword("Password for registration: ")
	if err != nil {
		return err
	}

	err = a.core.Register(ctx, email, password)
	switch {
	case errors.Is(err, common.ErrorAccountExists):
		fmt.Fprintf(a.out, "Account with %s already exists. Account creation failed.\n", email)
	case err != nil:
		a.logger.Error(ctx, "account creation failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Account creation failed.")
	default:
		fmt.Fprintln(a.out, "Account successfully created!")
	}

	return nil
}
