package utils

import "github.com/google/uuid"

// UUIDGenerator produces stable unique identifiers for accounts, pets and
// history entries. V7 UUIDs are time-ordered, so newly created records sort
// after older ones even if a collection is ever rebuilt.
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
