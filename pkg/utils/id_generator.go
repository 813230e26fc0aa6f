package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	// APIKeyPrefix marks every key issued to a tenant
	APIKeyPrefix = "tk_"

	// apiKeyEntropyBytes yields 32 base64url characters after the prefix
	apiKeyEntropyBytes = 24

	// apiKeyDisplayLength is how much of a key is kept in clear for operators
	apiKeyDisplayLength = 8
)

// GenerateID generates a new UUID for tenant and correlation IDs
func GenerateID() string {
	return uuid.New().String()
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// GenerateAPIKey generates a random opaque tenant API key of the form tk_<32 chars>
func GenerateAPIKey() (string, error) {
	buf := make([]byte, apiKeyEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate api key: %w", err)
	}
	return APIKeyPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashAPIKey returns the hex encoded SHA-256 digest stored in place of the key
func HashAPIKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

// APIKeyDisplayPrefix returns the leading characters of a key that are safe to keep and log
func APIKeyDisplayPrefix(apiKey string) string {
	if len(apiKey) <= apiKeyDisplayLength {
		return apiKey
	}
	return apiKey[:apiKeyDisplayLength]
}
