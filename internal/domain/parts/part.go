package parts

import (
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
)

// ContainerFill is the explicit fill state of a storage part.
type ContainerFill struct {
	UsedM3      float64 `json:"used_m3"`
	CargoMassKg float64 `json:"cargo_mass_kg"`
	ResourceID  string  `json:"resource_id,omitempty"`
}

// Part is one catalogued component of a ship or an inventory part stack.
// Category-specific fields are zero for categories that do not carry them;
// Extras preserves unrecognized payload fields for forward compatibility.
//
// Invariants (after normalization):
// - ItemID is non-empty
// - CategoryID is canonical
// - storage parts carry a stable ContainerUID
type Part struct {
	ItemID       string           `json:"item_id"`
	Name         string           `json:"name,omitempty"`
	Type         string           `json:"type,omitempty"`
	CategoryID   catalog.Category `json:"category_id"`
	MassKg       float64          `json:"mass_kg,omitempty"`
	CapacityM3   float64          `json:"capacity_m3,omitempty"`
	MassPerM3Kg  float64          `json:"mass_per_m3_kg,omitempty"`
	ThrustKn     float64          `json:"thrust_kn,omitempty"`
	IspS         float64          `json:"isp_s,omitempty"`
	ThermalMw    float64          `json:"thermal_mw,omitempty"`
	PowerMw      float64          `json:"power_mw,omitempty"`
	ResourceID   string           `json:"resource_id,omitempty"`
	ContainerUID string           `json:"container_uid,omitempty"`
	Fill         *ContainerFill   `json:"fill,omitempty"`
	Extras       map[string]any   `json:"extras,omitempty"`
}

// IsStorage reports whether the part is a storage part.
func (p *Part) IsStorage() bool {
	return p.CategoryID == catalog.CategoryStorage
}

// IsThruster reports whether the part is a thruster.
func (p *Part) IsThruster() bool {
	return p.CategoryID == catalog.CategoryThruster
}

// IsRobonaut reports whether the part is a robonaut.
func (p *Part) IsRobonaut() bool {
	return p.CategoryID == catalog.CategoryRobonaut
}

// FuelCapacityKg returns the fuel mass this part can hold, which is
// nonzero only for storage parts with a known fill density.
func (p *Part) FuelCapacityKg() float64 {
	if !p.IsStorage() {
		return 0
	}
	return p.CapacityM3 * p.MassPerM3Kg
}

// FillMassKg returns the cargo mass currently held, 0 when unfilled.
func (p *Part) FillMassKg() float64 {
	if p.Fill == nil {
		return 0
	}
	return p.Fill.CargoMassKg
}

// Clone returns a deep copy of the part.
func (p *Part) Clone() Part {
	out := *p
	if p.Fill != nil {
		fill := *p.Fill
		out.Fill = &fill
	}
	if p.Extras != nil {
		extras := make(map[string]any, len(p.Extras))
		for k, v := range p.Extras {
			extras[k] = v
		}
		out.Extras = extras
	}
	return out
}
