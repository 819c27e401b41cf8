// Package utils holds small shared helpers with no domain logic of their own.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces entity identifiers. UUIDv7 is preferred: the
// leading timestamp bits make consecutive ids cluster well as btree keys,
// while the random tail keeps the collision probability low enough to treat
// a collision as a storage-level integrity error rather than a retry case.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, falling back to a random v4 if the system
// clock source fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
