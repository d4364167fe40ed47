// Package cli implements the credgen command: it turns a username and a
// password into the YAML credential store the server verifies logins
// against.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"vitale/internal/credentials"
	"vitale/internal/security"
)

const generatedPasswordLength = 16

// GenerateOptions are the parsed credgen flags.
type GenerateOptions struct {
	OutPath      string
	Username     string
	DisplayName  string
	PasswordFile string
	Random       bool
	SessionDays  int
	Force        bool

	// Stdin is prompted for the password when neither PasswordFile nor
	// Random supplies one. Nil falls back to os.Stdin.
	Stdin *os.File
}

// GenerateResult describes the store that was written.
type GenerateResult struct {
	Path     string
	Username string

	// GeneratedPassword is set only when Random drew the password; the
	// caller must show it once, the store keeps just the hash.
	GeneratedPassword string
}

// RunGenerateCommand validates the options, obtains a password, and writes
// the credential store. An existing store is left alone unless Force is set.
func RunGenerateCommand(options GenerateOptions) (GenerateResult, error) {
	username := credentials.NormalizeUsername(options.Username)
	if username == "" {
		return GenerateResult{}, errors.New("username is required")
	}
	if options.SessionDays < 0 {
		return GenerateResult{}, errors.New("session days must not be negative")
	}
	if options.Random && options.PasswordFile != "" {
		return GenerateResult{}, errors.New("use either -random or -password-file, not both")
	}

	password, wasGenerated, err := resolvePassword(options)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := credentials.ValidatePasswordStrength(password); err != nil {
		return GenerateResult{}, fmt.Errorf("%w: need at least 8 characters mixing upper-case, lower-case and digits", err)
	}

	passwordHash, err := credentials.HashPassword(password)
	if err != nil {
		return GenerateResult{}, err
	}

	displayName := strings.TrimSpace(options.DisplayName)
	if displayName == "" {
		displayName = username
	}

	store := credentials.Store{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		SessionDays:  options.SessionDays,
	}
	if err := credentials.Write(options.OutPath, store, options.Force); err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{Path: options.OutPath, Username: username}
	if wasGenerated {
		result.GeneratedPassword = password
	}
	return result, nil
}

func resolvePassword(options GenerateOptions) (password string, wasGenerated bool, err error) {
	switch {
	case options.Random:
		password, err = generatePassword(generatedPasswordLength)
		return password, true, err
	case options.PasswordFile != "":
		password, err = readPasswordFile(options.PasswordFile)
		return password, false, err
	default:
		password, err = promptNewPassword(options.Stdin)
		return password, false, err
	}
}

// generatePassword redraws until the sample contains every character class
// the strength check requires.
func generatePassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	for {
		password, err := security.GeneratePassword(length, security.PasswordAlphabet)
		if err != nil {
			return "", err
		}
		if credentials.ValidatePasswordStrength(password) == nil {
			return password, nil
		}
	}
}

func readPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read password file: %w", err)
	}

	password, _, _ := strings.Cut(string(data), "\n")
	password = strings.TrimRight(password, "\r")
	if password == "" {
		return "", errors.New("password file is empty")
	}
	return password, nil
}
