package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly created user accounts.
// V7 UUIDs are preferred for their time-ordered layout; the generator falls
// back to random V4 if V7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
