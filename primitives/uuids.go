// SPDX-License-Identifier: MIT
// Package: cauldron/primitives

package primitives

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/cauldron/strategy"
)

// UUIDs yields version 4 UUIDs whose random bits come from the configured
// Source, so seeded trees produce reproducible identifiers.
type UUIDs struct {
	source strategy.Source
}

// NewUUIDs returns a UUIDs strategy.
func NewUUIDs(opts ...strategy.Option) *UUIDs {
	return &UUIDs{source: strategy.Resolve(opts...).Source()}
}

// Generate reads 16 bytes from the Source.
func (u *UUIDs) Generate() (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(sourceReader{u.source})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", MethodUUIDs, err)
	}

	return id, nil
}

func (u *UUIDs) Clone() strategy.Strategy[uuid.UUID] { return strategy.CloneOf[uuid.UUID](u) }

// sourceReader adapts a Source to io.Reader.
type sourceReader struct {
	src strategy.Source
}

// Read fills p completely; it never fails.
func (r sourceReader) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += len(word) {
		binary.LittleEndian.PutUint64(word[:], r.src.Uint64())
		copy(p[i:], word[:])
	}

	return len(p), nil
}
