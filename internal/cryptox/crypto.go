// Package cryptox implements the secret hashing used by the credential store:
// secrets are salted and hashed on write and verified in constant time on read.
package cryptox

import (
	"errors"
	"fmt"
	"strings"
)

// Supported hasher names.
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

// DefaultBcryptCost matches the work factor the web frontend's
// previous signup flow used.
const DefaultBcryptCost = 10

var (
	ErrEmptySecret = errors.New("secret cannot be empty")
	ErrInvalidHash = errors.New("invalid hash format")
)

// SecretHasher hashes secrets for storage and verifies candidates against
// stored hashes.
type SecretHasher interface {
	// Hash returns a self-describing salted hash of secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches hash. A mismatch is (false, nil);
	// an error means the stored hash could not be interpreted.
	Verify(secret, hash string) (bool, error)
}

// NewSecretHasher returns the hasher registered under name.
func NewSecretHasher(name string, bcryptCost int) (SecretHasher, error) {
	switch strings.ToLower(name) {
	case "", HasherBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	case HasherArgon2id:
		return NewArgon2idHasher(), nil
	}
	return nil, fmt.Errorf("unknown hasher %q", name)
}
