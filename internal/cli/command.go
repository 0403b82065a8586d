package cli

import "strings"

// command is the decoded form of a menu input line. Free-text matching
// happens once, here; everything downstream dispatches on the tagged
// value, with cmdUnknown as the explicit fallback.
type command int

const (
	cmdUnknown command = iota
	cmdNewAccount
	cmdForgotPassword
	cmdLogin
	cmdUpdatePassword
	cmdChangeEmail
	cmdDeleteAccount
	cmdTwoFactor
	cmdLogout
	cmdHelp
	cmdQuit
)

func parseCommand(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "new account":
		return cmdNewAccount
	case "forgot password":
		return cmdForgotPassword
	case "login":
		return cmdLogin
	case "update password":
		return cmdUpdatePassword
	case "change email":
		return cmdChangeEmail
	case "delete account":
		return cmdDeleteAccount
	case "2fa":
		return cmdTwoFactor
	case "logout":
		return cmdLogout
	case "help":
		return cmdHelp
	case "quit":
		return cmdQuit
	default:
		return cmdUnknown
	}
}
