package ship

import (
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
)

// HardenContainers migrates pre-container inline fuel state onto explicit
// per-tank fill. The ship-level fuel mass is distributed across water
// tanks proportionally to capacity; tanks that already carry explicit
// fill are left untouched. Returns true when any part changed so the
// caller can persist the migrated list.
//
// This runs on every load but mutates at most once: after the first pass
// every water tank has a Fill and later passes are no-ops.
func HardenContainers(partList []parts.Part, fuelKg float64) bool {
	var bare []*parts.Part
	var bareCapacityKg float64
	for i := range partList {
		p := &partList[i]
		if !p.IsStorage() || p.ResourceID != FuelResourceID {
			continue
		}
		cap := p.FuelCapacityKg()
		if cap <= 0 || p.Fill != nil {
			continue
		}
		bare = append(bare, p)
		bareCapacityKg += cap
	}

	if len(bare) == 0 || bareCapacityKg <= 0 {
		return false
	}

	for _, p := range bare {
		share := fuelKg * p.FuelCapacityKg() / bareCapacityKg
		usedM3 := 0.0
		if p.MassPerM3Kg > 0 {
			usedM3 = share / p.MassPerM3Kg
		}
		p.Fill = &parts.ContainerFill{
			UsedM3:      usedM3,
			CargoMassKg: share,
			ResourceID:  FuelResourceID,
		}
	}

	return true
}
