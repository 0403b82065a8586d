// Package cli implements the text-menu front end of the login simulator.
// It owns all prompting, reprompt loops, and rendering; every state
// transition goes through the auth core.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/RahemShaikh/LoginSimulator/internal/auth"
	"github.com/RahemShaikh/LoginSimulator/internal/common"
	"github.com/RahemShaikh/LoginSimulator/internal/logging"
)

type App struct {
	core    *auth.Core
	session *auth.Session
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(core *auth.Core, logger logging.Logger) *App {
	return &App{
		core:    core,
		session: auth.NewSession(),
		logger:  logger.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// promptEmail reads an e-mail address, reprompting until the syntax is
// valid. Validation itself is the core's pure function; the retry loop
// lives here.
func (a *App) promptEmail(prompt string) (string, error) {
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	for auth.ValidateEmail(email) != nil {
		fmt.Fprintln(a.out, "Not valid E-Mail syntax. Try again")
		email, err = getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
	}
	return email, nil
}

// promptNewPassword reads a password without echo, reprompting until it
// is non-empty.
func (a *App) promptNewPassword(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	for auth.ValidatePassword(string(pw)) != nil {
		fmt.Fprintln(a.out, "Password is of invalid length. Try again")
		pw, err = getPassword(prompt, a.out)
		if err != nil {
			return "", err
		}
	}
	password := string(pw)
	common.WipeByteArray(pw)
	return password, nil
}
