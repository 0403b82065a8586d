package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

// Login drives the log-in page. With 2FA disabled a correct password
// authenticates directly; with 2FA enabled the emailed code is requested
// inline and a single wrong answer sends the user back to the start page.
func (a *App) Login(ctx context.Context) error {
	printHeading(a.out, "LOG IN PAGE")

	email, err := getSimpleText(a.reader, "E-Mail: ", a.out)
	if err != nil {
		return err
	}

	pw, err := getPassword("Password: ", a.out)
	if err != nil {
		return err
	}
	password := string(pw)
	common.WipeByteArray(pw)

	ch, err := a.core.Login(ctx, a.session, email, password)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "E-Mail not found.")
	case errors.Is(err, common.ErrAuthenticationFailed):
		fmt.Fprintln(a.out, "Incorrect password")
	case errors.Is(err, common.ErrorDelivery):
		fmt.Fprintln(a.out, "Could not send the authentication code. Try again later.")
	case err != nil:
		a.logger.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Try again later.")
	case ch != nil:
		fmt.Fprintln(a.out, "Two Factor Authentication code sent. Check your E-Mail.")

		code, err := getSimpleText(a.reader, "2-FA Code: ", a.out)
		if err != nil {
			// abandoning the prompt must not leave a live challenge behind
			a.core.Logout(a.session)
			return err
		}
		if err := a.core.SubmitCode(ctx, a.session, code); err != nil {
			fmt.Fprintln(a.out, "Authentication Failed. Returning to start page.")
			return nil
		}
		fmt.Fprintln(a.out, "Authentication successful")
		fmt.Fprintln(a.out, "Login successful")
	default:
		fmt.Fprintln(a.out, "Login successful")
	}

	return nil
}
