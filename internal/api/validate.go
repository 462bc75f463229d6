package api

import "fmt"

// KeyLength is the exact length of a valid API key.
const KeyLength = 37

// ValidateKey performs pre-flight validation of the API key format so a
// malformed key produces a diagnosable error before a network round trip.
// The service itself reports malformed keys of the right length with a 403,
// so the local error carries the same status for callers that branch on it.
//
// Checks run in order: length, alphanumeric, lower-case only. The first
// failing check wins.
func ValidateKey(key string) error {
	if len(key) != KeyLength {
		return &CredentialError{
			StatusCode: 403,
			Reason:     fmt.Sprintf("API key must be %d characters, got %d", KeyLength, len(key)),
		}
	}
	for i := 0; i < len(key); i++ {
		if !isAlphanumeric(key[i]) {
			return &CredentialError{
				StatusCode: 403,
				Reason:     fmt.Sprintf("API key must be alphanumeric, found %q at position %d", key[i], i),
			}
		}
	}
	for i := 0; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' {
			return &CredentialError{
				StatusCode: 403,
				Reason:     fmt.Sprintf("API key must be lower-case, found %q at position %d", key[i], i),
			}
		}
	}
	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
