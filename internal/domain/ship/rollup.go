package ship

import (
	"sort"
	"strings"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
)

// Phase buckets a stored resource by physical state.
type Phase string

const (
	PhaseSolid  Phase = "solid"
	PhaseLiquid Phase = "liquid"
	PhaseGas    Phase = "gas"
)

// Density thresholds, kg/m3, for phase classification when no name hint applies.
const (
	gasDensityMaxKgM3    = 200.0
	liquidDensityMaxKgM3 = 2000.0
)

// RollupEntry is the aggregate of one resource across all ship containers.
type RollupEntry struct {
	ResourceID string  `json:"resource_id"`
	Name       string  `json:"name"`
	Phase      Phase   `json:"phase"`
	MassKg     float64 `json:"mass_kg"`
	VolumeM3   float64 `json:"volume_m3"`
}

var gasHints = []string{"gas", "hydrogen", "helium", "methane", "oxygen", "h2", "o2", "ch4"}
var liquidHints = []string{"water", "liquid", "lox", "lh2", "fuel"}

// ResourceRollup sums container contents per resource, then classifies
// each into a phase by id/name hints or, failing that, by density. The
// result is ordered by mass descending for stable client rendering.
func ResourceRollup(partList []parts.Part, reg *catalog.Registry) []RollupEntry {
	byResource := make(map[string]*RollupEntry)
	order := []string{}

	for i := range partList {
		p := &partList[i]
		if !p.IsStorage() || p.Fill == nil || p.Fill.CargoMassKg <= 0 {
			continue
		}
		resourceID := p.Fill.ResourceID
		if resourceID == "" {
			resourceID = p.ResourceID
		}
		if resourceID == "" {
			continue
		}

		entry, ok := byResource[resourceID]
		if !ok {
			entry = &RollupEntry{ResourceID: resourceID}
			if rec, found := reg.Resource(resourceID); found {
				entry.Name = rec.Name()
			}
			if entry.Name == "" {
				entry.Name = resourceID
			}
			byResource[resourceID] = entry
			order = append(order, resourceID)
		}
		entry.MassKg += p.Fill.CargoMassKg
		entry.VolumeM3 += p.Fill.UsedM3
	}

	out := make([]RollupEntry, 0, len(order))
	for _, id := range order {
		entry := byResource[id]
		entry.Phase = classifyPhase(entry, reg)
		out = append(out, *entry)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MassKg > out[j].MassKg })
	return out
}

func classifyPhase(entry *RollupEntry, reg *catalog.Registry) Phase {
	// Liquid hints win over gas hints so "liquid oxygen" lands in liquid.
	hint := strings.ToLower(entry.ResourceID + " " + entry.Name)
	for _, h := range liquidHints {
		if strings.Contains(hint, h) {
			return PhaseLiquid
		}
	}
	for _, h := range gasHints {
		if strings.Contains(hint, h) {
			return PhaseGas
		}
	}

	density := reg.ResourceDensity(entry.ResourceID)
	if density == 0 && entry.VolumeM3 > 0 {
		density = entry.MassKg / entry.VolumeM3
	}
	switch {
	case density > 0 && density < gasDensityMaxKgM3:
		return PhaseGas
	case density > 0 && density < liquidDensityMaxKgM3:
		return PhaseLiquid
	default:
		return PhaseSolid
	}
}
