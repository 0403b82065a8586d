package cli

import (
	"fmt"
	"io"
	"strings"
)

// Colors and fonts for the terminal interface.
const (
	colorBlue   = "\033[34m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	fontBold    = "\033[1m"
	fontReset   = "\033[0m"
)

// printHeading renders a page heading like the original simulator:
//
//	--->>>            LOG IN PAGE            <<<---
func printHeading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s--->>>%s            %s%s%s            %s<<<---%s\n\n",
		fontBold, fontReset, colorRed, title, fontReset, fontBold, fontReset)
}

func menuEntry(name, description string) string {
	return fmt.Sprintf("  %s-%s %s%-25s%s : %s", colorRed, fontReset, colorYellow, name, fontReset, description)
}

// printStartPage prints the banner and command list shown to anonymous
// users.
func printStartPage(w io.Writer) {
	lines := []string{
		colorBlue + "================================================" + fontReset,
		"            " + fontBold + "Rahem's Login Simulator" + fontReset,
		colorBlue + "================================================" + fontReset,
		"",
		"Enter your account information below.",
		"",
		"Commands:",
		menuEntry("New Account", "Register a new account"),
		menuEntry("Forgot Password", "Reset your password"),
		menuEntry("Login", "Login to your account"),
		menuEntry("Quit", "Exit the program"),
		menuEntry("Help", "Show command list again"),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

// printLoggedInPage prints the banner and command list shown to
// authenticated users.
func printLoggedInPage(w io.Writer) {
	lines := []string{
		colorBlue + "================================================" + fontReset,
		"            " + fontBold + "Rahem's Login Simulator" + fontReset,
		colorBlue + "================================================" + fontReset,
		"",
		"You have successfully logged in!",
		"",
		"Commands:",
		menuEntry("Update Password", "Change your password"),
		menuEntry("Change Email", "Change your email"),
		menuEntry("Delete Account", "Delete your account"),
		menuEntry("2FA", "Enable 2 Factor Authentication"),
		menuEntry("Logout", "Log out of account"),
		menuEntry("Quit", "Exit the program"),
		menuEntry("Help", "Show command list again"),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

// PrintFarewell prints the goodbye message used on quit and interrupt.
// It is exported so the interrupt handler in main can reuse it.
func PrintFarewell(w io.Writer) {
	fmt.Fprintln(w, "Thank you for visiting Rahem's Login Simulator")
	fmt.Fprintln(w, "See you soon!")
}
