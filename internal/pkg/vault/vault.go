// Package vault hashes and verifies login credentials. Plaintext
// passwords never leave this package and are never logged.
package vault

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Vault interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type BcryptVault struct {
	cost int
}

func NewBcryptVault() *BcryptVault {
	return &BcryptVault{cost: bcrypt.DefaultCost}
}

// Hash derives a one-way digest of the password. The same password
// hashed twice yields different digests because of the embedded salt.
func (v *BcryptVault) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// Verify reports whether the password matches the stored digest.
func (v *BcryptVault) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
