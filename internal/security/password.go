package security

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/Menwuyelet/jobboard/internal/domain"
)

const minPasswordLength = 8

const specialChars = `!@#$%^&*(),.?":{}|<>`

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against its bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordComplexity enforces the registration password policy:
// minimum length plus at least one letter, one digit, and one special
// character.
func ValidatePasswordComplexity(password string) error {
	if len(password) < minPasswordLength {
		return domain.E(domain.CodeValidation, "password must be at least 8 characters")
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasLetter {
		return domain.E(domain.CodeValidation, "password must contain at least one letter")
	}
	if !hasDigit {
		return domain.E(domain.CodeValidation, "password must contain at least one number")
	}
	if !hasSpecial {
		return domain.E(domain.CodeValidation, "password must contain at least one special character")
	}
	return nil
}
