// Package credentials reads and writes the single-user credential store.
// The store is an external YAML file produced by credgen, never code: the
// server only verifies against it.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const defaultSessionDays = 30

var (
	ErrInvalidStore = errors.New("invalid credential store")
	ErrWeakPassword = errors.New("weak password")
	// ErrStoreExists stops credgen from clobbering a store without -force.
	ErrStoreExists = errors.New("credential store already exists")
)

// Store is the on-disk credential file for the one account this system has.
type Store struct {
	Username     string `yaml:"username"`
	DisplayName  string `yaml:"display_name"`
	PasswordHash string `yaml:"password_hash"`
	SessionDays  int    `yaml:"session_days"`
}

// Load parses and validates the store file.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Store{}, fmt.Errorf("read credential store: %w", err)
	}

	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return Store{}, fmt.Errorf("parse credential store: %w", err)
	}

	store.Username = NormalizeUsername(store.Username)
	if store.Username == "" {
		return Store{}, fmt.Errorf("%w: username is empty", ErrInvalidStore)
	}
	if strings.TrimSpace(store.PasswordHash) == "" {
		return Store{}, fmt.Errorf("%w: password_hash is empty", ErrInvalidStore)
	}
	if strings.TrimSpace(store.DisplayName) == "" {
		store.DisplayName = store.Username
	}
	return store, nil
}

// Write marshals the store to path with owner-only permissions. An existing
// file is only replaced when force is set.
func Write(path string, store Store, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrStoreExists
		}
	}

	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("marshal credential store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credential store: %w", err)
	}
	return nil
}

// Verify reports whether the presented username and password match the store.
func (store Store) Verify(username string, password string) bool {
	if NormalizeUsername(username) != store.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(store.PasswordHash), []byte(password)) == nil
}

// SessionTTL is how long an issued session cookie stays valid.
func (store Store) SessionTTL() time.Duration {
	days := store.SessionDays
	if days <= 0 {
		days = defaultSessionDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// NormalizeUsername collapses the case and whitespace variants of a username
// to one canonical form, both at load and at login.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// HashPassword bcrypt-hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ValidatePasswordStrength enforces the minimum credgen accepts: at least 8
// characters with an upper-case letter, a lower-case letter, and a digit.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
