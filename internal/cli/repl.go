package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run starts the simulator's outer loop: the start page for anonymous
// users, nesting into the logged-in page after a successful login. It
// returns on quit or input EOF. Errors from command handlers are handled
// and rendered by the handlers themselves; the loop only routes.
func (a *App) Run(ctx context.Context) {
	printStartPage(a.out)

	for {
		printHeading(a.out, "START PAGE")

		line, err := getSimpleText(a.reader, ">>> ", a.out)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.logger.Error(ctx, "reading command", "error", err)
			}
			return
		}

		switch parseCommand(line) {
		case cmdNewAccount:
			if err := a.Register(ctx); err != nil {
				return
			}

		case cmdForgotPassword:
			if err := a.ForgotPassword(ctx); err != nil {
				return
			}

		case cmdLogin:
			if err := a.Login(ctx); err != nil {
				return
			}
			if a.session.IsAuthenticated() {
				if quit := a.loggedInLoop(ctx); quit {
					return
				}
			}

		case cmdHelp:
			printStartPage(a.out)

		case cmdQuit:
			PrintFarewell(a.out)
			return

		default:
			fmt.Fprintln(a.out, "Invalid command")
		}
	}
}

// loggedInLoop is the authenticated menu. It returns true when the user
// quit the program and false when they dropped back to the start page
// (logout or account deletion).
func (a *App) loggedInLoop(ctx context.Context) (quit bool) {
	printLoggedInPage(a.out)

	for {
		printHeading(a.out, "LOGGED IN PAGE")
		fmt.Fprintf(a.out, "User: %s\n", a.session.Email())

		line, err := getSimpleText(a.reader, ">>> ", a.out)
		if err != nil {
			return true
		}

		switch parseCommand(line) {
		case cmdUpdatePassword:
			if err := a.UpdatePassword(ctx); err != nil {
				return true
			}

		case cmdChangeEmail:
			if err := a.ChangeEmail(ctx); err != nil {
				return true
			}

		case cmdDeleteAccount:
			deleted, err := a.DeleteAccount(ctx)
			if err != nil {
				return true
			}
			if deleted {
				return false
			}

		case cmdTwoFactor:
			if err := a.TwoFactor(ctx); err != nil {
				return true
			}

		case cmdLogout:
			a.Logout()
			return false

		case cmdHelp:
			printLoggedInPage(a.out)

		case cmdQuit:
			a.Logout()
			PrintFarewell(a.out)
			return true

		default:
			fmt.Fprintln(a.out, "Invalid command")
		}
	}
}
