package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered identifiers for trace IDs and MQTT
// client suffixes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// DefaultTokenBytes is the entropy of a password reset token.
const DefaultTokenBytes = 16

// TokenGenerator issues random hex tokens of a fixed length.
type TokenGenerator struct {
	size int
}

// NewTokenGenerator returns a generator producing 2*size hex characters.
// A non-positive size falls back to DefaultTokenBytes.
func NewTokenGenerator(size int) *TokenGenerator {
	if size <= 0 {
		size = DefaultTokenBytes
	}
	return &TokenGenerator{size: size}
}

func (g *TokenGenerator) Generate() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
