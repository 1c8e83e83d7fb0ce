// Package security wraps the one-way password hashing used at signup
// and login. bcrypt generates a random salt per call, so hashing the
// same password twice yields different strings, and comparison runs in
// constant time.
package security

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches bcrypt's cost factor of 10 rounds.
const DefaultCost = bcrypt.DefaultCost

// PasswordHasher computes and verifies salted bcrypt hashes.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given cost factor.
// Non-positive values fall back to DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash derives a salted hash from the plaintext. The plaintext is never
// stored or logged anywhere.
func (h PasswordHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash.
func (h PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
