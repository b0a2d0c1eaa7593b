package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt embeds the cost in the digest, so verification of existing
// hashes is unaffected by this value.
const bcryptCost = 10

// HashPassword hashes a password using bcrypt with the fixed cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
// A mismatch returns (false, nil); a malformed digest returns the
// underlying error so callers can surface it as an internal failure.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
