// Package hashutil derives stable, non-reversible tags for values that must not
// appear in logs verbatim, such as email addresses and unsubscribe tokens.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// FingerprintLength is the number of hex characters kept by Fingerprint.
const FingerprintLength = 12

// SHA256Hex returns the hex SHA-256 of the trimmed, lower-cased input.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(input))))
	return hex.EncodeToString(sum[:])
}

// Fingerprint is a short prefix of SHA256Hex, enough to correlate log lines
// for the same subscriber. Empty input yields "".
func Fingerprint(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return SHA256Hex(input)[:FingerprintLength]
}
