package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// PasswordAlphabet leaves out 0, O, 1, I and l so a printed password can be
// retyped without guessing.
const PasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var (
	errNonPositiveLength = errors.New("length must be positive")
	errEmptyAlphabet     = errors.New("alphabet must not be empty")
)

// GeneratePassword draws length characters uniformly from alphabet using
// crypto/rand, with no modulo bias.
func GeneratePassword(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	password := make([]byte, length)
	for index := range password {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		password[index] = alphabet[position.Int64()]
	}

	return string(password), nil
}
