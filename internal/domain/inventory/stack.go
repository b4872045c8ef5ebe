package inventory

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// StackType partitions the two stack namespaces at a location.
type StackType string

const (
	StackTypeResource StackType = "resource"
	StackTypePart     StackType = "part"
)

// Epsilon is the threshold below which a stack dimension counts as zero.
const Epsilon = 1e-9

// Stack is one fungible inventory row at a location.
//
// Invariants:
// - Quantity, MassKg, VolumeM3 >= 0
// - a persisted stack has at least one dimension > Epsilon
// - StackKey is the resource id for resource stacks and the content
//   hash of the normalized part for part stacks
type Stack struct {
	LocationID string
	StackType  StackType
	StackKey   string
	ItemID     string
	Name       string
	Quantity   float64
	MassKg     float64
	VolumeM3   float64
	Payload    string
	UpdatedAt  time.Time
}

// ApplyDelta adds the deltas and clamps each dimension to zero.
func (s *Stack) ApplyDelta(dQuantity, dMassKg, dVolumeM3 float64) {
	s.Quantity += dQuantity
	s.MassKg += dMassKg
	s.VolumeM3 += dVolumeM3
	if s.Quantity < 0 {
		s.Quantity = 0
	}
	if s.MassKg < 0 {
		s.MassKg = 0
	}
	if s.VolumeM3 < 0 {
		s.VolumeM3 = 0
	}
}

// IsEmpty reports whether every dimension has dropped to zero; empty
// rows are deleted rather than persisted.
func (s *Stack) IsEmpty() bool {
	return s.Quantity <= Epsilon && s.MassKg <= Epsilon && s.VolumeM3 <= Epsilon
}

// PerUnitMassKg returns the mass of one unit in this stack, falling back
// to the given part mass when the stack is unit-scale.
func (s *Stack) PerUnitMassKg(fallbackKg float64) float64 {
	if s.Quantity > 0 {
		return s.MassKg / s.Quantity
	}
	return fallbackKg
}

// PartStackKey derives the content-addressed stack key for a normalized
// part: the SHA-1 of the canonical JSON of {"part": part}. Instance-scoped
// fields (container UID, fill state) are stripped first so structurally
// identical parts share a stack.
func PartStackKey(p parts.Part) (string, error) {
	identity := p.Clone()
	identity.ContainerUID = ""
	identity.Fill = nil

	encoded, err := shared.CanonicalJSON(map[string]any{"part": identity})
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(encoded)
	return hex.EncodeToString(sum[:]), nil
}
