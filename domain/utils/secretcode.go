package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// codeSpace is the number of possible secret codes (4 decimal digits)
const codeSpace = 10000

// IssueCode generates a fresh 4-digit numeric secret code, leading zeros
// allowed. The code is shown to the giver once at draw time and later
// required to re-reveal the assignment.
func IssueCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("failed to generate secret code: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// HashCode produces the salted hash stored alongside a draw
func HashCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret code: %w", err)
	}
	return string(hash), nil
}

// VerifyCode checks a candidate code against a stored hash
func VerifyCode(candidate, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}
