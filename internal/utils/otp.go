package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a password-reset code
const OTPLength = 6

// GenerateOTP returns a random numeric code of OTPLength digits.
// Leading zeros are kept, so the code is always exactly six characters.
func GenerateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
