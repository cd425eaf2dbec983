package utils

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordStrength returns a human-readable reason when the password is too
// weak, or "" when it passes.
func PasswordStrength(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters."
	}
	if !upperRe.MatchString(password) {
		return "Password must include at least one uppercase letter."
	}
	if !digitRe.MatchString(password) {
		return "Password must include at least one number."
	}
	if !symbolRe.MatchString(password) {
		return "Password must include at least one symbol (e.g. !@#$%)."
	}
	return ""
}
