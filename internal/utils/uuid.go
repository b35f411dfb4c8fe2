package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RayIDLength is the number of hex characters of an edge-request identifier.
const RayIDLength = 16

// RayIDGenerator produces placeholder edge-request identifiers for pages
// rendered without a real one.
type RayIDGenerator struct {
}

func NewRayIDGenerator() *RayIDGenerator {
	return &RayIDGenerator{}
}

// Generate returns RayIDLength lowercase hex characters taken from the random
// part of a fresh UUID.
func (g *RayIDGenerator) Generate() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	// the tail avoids the fixed version nibble at position 12
	return hex[len(hex)-RayIDLength:]
}
