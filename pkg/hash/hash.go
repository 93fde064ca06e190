package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultCost = 10

// Password hashes a plaintext credential with bcrypt. The caller decides when
// a value is plaintext; stored values are never sniffed for a hash prefix.
func Password(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), defaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Compare reports whether plain matches the stored bcrypt hash.
func Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
