package ship

import (
	"fmt"
	"time"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// Ship entity - a spacecraft composed from catalogued parts.
//
// Invariants:
// - ID is non-empty
// - Exactly one of {docked, in transit} holds: docked means LocationID is
//   set and all four transit fields are nil; in transit means LocationID
//   is empty and all four transit fields are set
// - FuelKg stays within [0, fuel capacity derived from parts]
//
// Transit state machine:
// - Docked(L) -> BeginTransfer() -> InTransit(F,T,dep,arr,path)
// - InTransit -> Arrive() -> Docked(T)
type Ship struct {
	id   string
	name string

	// Visual attributes, opaque to the simulation.
	skin  string
	color string

	locationID     string
	fromLocationID string
	toLocationID   string
	departedAt     *time.Time
	arrivesAt      *time.Time
	transferPath   []string

	parts  []parts.Part
	fuelKg float64
}

// NewShip creates a docked ship with validation.
func NewShip(id, name, locationID string, partList []parts.Part, fuelKg float64) (*Ship, error) {
	s := &Ship{
		id:         id,
		name:       name,
		locationID: locationID,
		parts:      partList,
		fuelKg:     fuelKg,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReconstructShip creates a Ship from persisted state (used by the repository).
func ReconstructShip(
	id, name, skin, color string,
	locationID string,
	fromLocationID, toLocationID string,
	departedAt, arrivesAt *time.Time,
	transferPath []string,
	partList []parts.Part,
	fuelKg float64,
) (*Ship, error) {
	s := &Ship{
		id:             id,
		name:           name,
		skin:           skin,
		color:          color,
		locationID:     locationID,
		fromLocationID: fromLocationID,
		toLocationID:   toLocationID,
		departedAt:     departedAt,
		arrivesAt:      arrivesAt,
		transferPath:   transferPath,
		parts:          partList,
		fuelKg:         fuelKg,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Ship) validate() error {
	if s.id == "" {
		return shared.NewValidationError("id", "cannot be empty")
	}
	if s.fuelKg < 0 {
		return shared.NewValidationError("fuel_kg", "cannot be negative")
	}

	docked := s.locationID != ""
	transitFields := 0
	if s.fromLocationID != "" {
		transitFields++
	}
	if s.toLocationID != "" {
		transitFields++
	}
	if s.departedAt != nil {
		transitFields++
	}
	if s.arrivesAt != nil {
		transitFields++
	}

	switch {
	case docked && transitFields != 0:
		return shared.NewValidationError("location_id", "docked ship cannot carry transit fields")
	case !docked && transitFields != 4:
		return shared.NewValidationError("location_id", "ship must be docked or fully in transit")
	}
	return nil
}

// Getters

func (s *Ship) ID() string             { return s.id }
func (s *Ship) Name() string           { return s.name }
func (s *Ship) Skin() string           { return s.skin }
func (s *Ship) Color() string          { return s.color }
func (s *Ship) LocationID() string     { return s.locationID }
func (s *Ship) FromLocationID() string { return s.fromLocationID }
func (s *Ship) ToLocationID() string   { return s.toLocationID }
func (s *Ship) DepartedAt() *time.Time { return s.departedAt }
func (s *Ship) ArrivesAt() *time.Time  { return s.arrivesAt }
func (s *Ship) TransferPath() []string { return s.transferPath }
func (s *Ship) Parts() []parts.Part    { return s.parts }
func (s *Ship) FuelKg() float64        { return s.fuelKg }

// IsDocked reports whether the ship is docked at a location.
func (s *Ship) IsDocked() bool {
	return s.locationID != ""
}

// IsInTransit reports whether the ship is between locations.
func (s *Ship) IsInTransit() bool {
	return !s.IsDocked()
}

// Stats derives the ship's current rocket-equation stats.
func (s *Ship) Stats() Stats {
	return ComputeStats(s.parts, s.fuelKg)
}

// SetName renames the ship.
func (s *Ship) SetName(name string) {
	s.name = name
}

// SetAppearance updates the visual attributes.
func (s *Ship) SetAppearance(skin, color string) {
	s.skin = skin
	s.color = color
}

// SetParts replaces the part list and reclamps fuel to the new capacity.
func (s *Ship) SetParts(partList []parts.Part) {
	s.parts = partList
	stats := ComputeStats(partList, s.fuelKg)
	s.fuelKg = stats.FuelKg
}

// ConsumeFuel debits fuel for a maneuver.
func (s *Ship) ConsumeFuel(kg float64) error {
	if kg < 0 {
		return shared.NewValidationError("fuel_kg", "cannot consume a negative amount")
	}
	if kg > s.fuelKg {
		return shared.NewInsufficientFuelError(kg, s.fuelKg)
	}
	s.fuelKg -= kg
	return nil
}

// AddFuel credits fuel up to capacity and returns the mass accepted.
func (s *Ship) AddFuel(kg float64) float64 {
	if kg <= 0 {
		return 0
	}
	capacity := ComputeStats(s.parts, 0).FuelCapacityKg
	accepted := kg
	if s.fuelKg+accepted > capacity {
		accepted = capacity - s.fuelKg
	}
	if accepted < 0 {
		accepted = 0
	}
	s.fuelKg += accepted
	return accepted
}

// BeginTransfer moves the ship from docked into transit.
func (s *Ship) BeginTransfer(toLocationID string, departedAt, arrivesAt time.Time, path []string) error {
	if !s.IsDocked() {
		return shared.NewNotDockedError(s.id)
	}
	if toLocationID == s.locationID {
		return shared.NewValidationError("to_location_id", "destination equals current location")
	}

	s.fromLocationID = s.locationID
	s.toLocationID = toLocationID
	s.departedAt = &departedAt
	s.arrivesAt = &arrivesAt
	s.transferPath = path
	s.locationID = ""
	return nil
}

// Arrive promotes an in-transit ship to docked at its destination and
// clears the transit fields.
func (s *Ship) Arrive() error {
	if s.IsDocked() {
		return fmt.Errorf("ship %s is not in transit", s.id)
	}
	s.locationID = s.toLocationID
	s.fromLocationID = ""
	s.toLocationID = ""
	s.departedAt = nil
	s.arrivesAt = nil
	s.transferPath = nil
	return nil
}

// TransitProgress returns the transfer completion fraction in [0,1] at
// the given game time; 0 for docked ships. The in-transit position is a
// pure function of (departed, arrives, now).
func (s *Ship) TransitProgress(now time.Time) float64 {
	if s.IsDocked() || s.departedAt == nil || s.arrivesAt == nil {
		return 0
	}
	total := s.arrivesAt.Sub(*s.departedAt).Seconds()
	if total <= 0 {
		return 1
	}
	elapsed := now.Sub(*s.departedAt).Seconds()
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	default:
		return elapsed / total
	}
}

func (s *Ship) String() string {
	if s.IsDocked() {
		return fmt.Sprintf("Ship(%s docked at %s)", s.id, s.locationID)
	}
	return fmt.Sprintf("Ship(%s %s->%s)", s.id, s.fromLocationID, s.toLocationID)
}
