package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// SessionTokenLength gives 64 characters over a 62-symbol alphabet,
// well past the entropy needed for an unguessable session id.
const SessionTokenLength = 64

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// NewSessionToken returns an opaque session id for the session cookie.
func NewSessionToken() (string, error) {
	return RandomString(SessionTokenLength, tokenAlphabet)
}

// RandomString returns a cryptographically secure, unbiased string of
// the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
