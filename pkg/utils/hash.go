package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// PhoneFingerprint returns a short SHA-256 prefix of the phone's digits so leads
// can be correlated in logs without writing the number itself
func PhoneFingerprint(phone string) string {
	sum := sha256.Sum256([]byte(DigitsOnly(phone)))
	return hex.EncodeToString(sum[:])[:12]
}
