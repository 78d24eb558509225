// Package cli holds the small interactive pieces shared by the command
// binaries.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Credentials resolves the login email and password. The email comes from
// the flag value, the EVERFIT_EMAIL env var, or an interactive prompt, in
// that order; the password from EVERFIT_PASSWORD or a no-echo prompt.
func Credentials(emailFlag string) (email, password string, err error) {
	email = strings.TrimSpace(emailFlag)
	if email == "" {
		email = strings.TrimSpace(os.Getenv("EVERFIT_EMAIL"))
	}
	if email == "" {
		fmt.Print("Email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("reading email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return "", "", fmt.Errorf("email is required")
	}

	password = os.Getenv("EVERFIT_PASSWORD")
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimSpace(string(raw))
	}
	if password == "" {
		return "", "", fmt.Errorf("password is required")
	}

	return email, password, nil
}

// StateDir returns the configured state directory, defaulting to
// ~/.everfit-sync.
func StateDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".everfit-sync"), nil
}
