package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateJobOTP returns a 4-digit numeric code used to verify job
// start and completion in person.
func GenerateJobOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
