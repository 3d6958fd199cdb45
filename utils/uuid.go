package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (v4) identifier for listings, bids, comments and watch entries
func GenerateID() string {
	return uuid.NewString()
}

// IsID reports whether s has the shape of an identifier made by GenerateID
func IsID(s string) bool {
	return uuid.Validate(s) == nil
}
