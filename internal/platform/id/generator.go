package id

import (
	"github.com/cockroachdb/errors"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns v4 UUIDs, optionally prefixed ("car-", "off-").
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "generate uuid")
	}

	return g.prefix + v.String(), nil
}
