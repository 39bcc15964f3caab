package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const orderIdBytes = 5

// GenerateOrderId returns a short random order identifier like ORD-1a2b3c4d5e
func GenerateOrderId() (string, error) {
	buf := make([]byte, orderIdBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secure random id: %w", err)
	}

	return "ORD-" + hex.EncodeToString(buf), nil
}
