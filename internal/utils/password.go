package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext secret using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext secret with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BcryptEncoder hashes passwords and PINs with bcrypt.
type BcryptEncoder struct{}

func (BcryptEncoder) Encode(plain string) (string, error) {
	return HashPassword(plain)
}

// Matches reports whether plain hashes to digest. An empty digest never matches.
func (BcryptEncoder) Matches(plain string, digest string) bool {
	if digest == "" {
		return false
	}
	return CheckPasswordHash(plain, digest)
}
