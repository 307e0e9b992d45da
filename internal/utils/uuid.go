// Package utils provides small helpers shared by the client packages.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. Time-ordered v7 identifiers
// are preferred so gateway logs sort by issue time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, or a random v4 one if the v7
// generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
