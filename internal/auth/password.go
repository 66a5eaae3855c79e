package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// ValidatePassword rejects passwords that HashPassword would refuse.
func ValidatePassword(password string) error {
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes: %w", MaxPasswordBytes, ErrPasswordTooLong)
	}
	return nil
}

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
