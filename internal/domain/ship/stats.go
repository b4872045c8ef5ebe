package ship

import (
	"math"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/pkg/utils"
)

// G0 is standard gravity in m/s2, the Isp normalization constant.
const G0 = 9.80665

// FuelResourceID is the propellant resource in the base catalog.
const FuelResourceID = "water"

// Stats are the rocket-equation derivations for a part list.
type Stats struct {
	DryMassKg         float64 `json:"dry_mass_kg"`
	FuelCapacityKg    float64 `json:"fuel_capacity_kg"`
	FuelKg            float64 `json:"fuel_kg"`
	WetMassKg         float64 `json:"wet_mass_kg"`
	IspS              float64 `json:"isp_s"`
	ThrustKn          float64 `json:"thrust_kn"`
	AccelerationGs    float64 `json:"acceleration_gs"`
	DeltaVRemainingMS float64 `json:"delta_v_remaining_m_s"`
}

// ComputeStats derives ship performance from its parts and current fuel.
//
// Invariants:
// - WetMassKg == DryMassKg + FuelKg
// - FuelKg <= FuelCapacityKg
// - IspS is the Isp of the dominant thruster (highest thrust), 0 if none
func ComputeStats(partList []parts.Part, currentFuelKg float64) Stats {
	var s Stats

	var bestThrust float64
	for i := range partList {
		p := &partList[i]
		s.DryMassKg += p.MassKg

		if p.IsStorage() && p.ResourceID == FuelResourceID {
			s.FuelCapacityKg += p.FuelCapacityKg()
		}
		if p.IsThruster() {
			s.ThrustKn += p.ThrustKn
			if p.ThrustKn > bestThrust {
				bestThrust = p.ThrustKn
				s.IspS = p.IspS
			}
		}
	}

	s.FuelKg = utils.Clamp(currentFuelKg, 0, s.FuelCapacityKg)
	s.WetMassKg = s.DryMassKg + s.FuelKg

	if s.WetMassKg > 0 {
		s.AccelerationGs = s.ThrustKn * 1000 / (s.WetMassKg * G0)
	}
	if s.DryMassKg > 0 && s.FuelKg > 0 && s.IspS > 0 {
		s.DeltaVRemainingMS = s.IspS * G0 * math.Log(s.WetMassKg/s.DryMassKg)
	}

	return s
}

// FuelNeededForDeltaV returns the additional fuel mass required to reach
// the given delta-v from the current state, clamped to zero when the
// ship already has enough.
func (s Stats) FuelNeededForDeltaV(dvMS float64) (float64, error) {
	if dvMS <= 0 {
		return 0, nil
	}
	if s.IspS <= 0 {
		return 0, shared.NewInsufficientIspError()
	}
	required := s.DryMassKg * (math.Exp(dvMS/(s.IspS*G0)) - 1)
	return utils.ClampMin(required-s.FuelKg, 0), nil
}

// FuelToSpendForDeltaV returns the total fuel mass a maneuver of the
// given delta-v consumes from the current state.
func (s Stats) FuelToSpendForDeltaV(dvMS float64) (float64, error) {
	if dvMS <= 0 {
		return 0, nil
	}
	if s.IspS <= 0 {
		return 0, shared.NewInsufficientIspError()
	}
	return s.DryMassKg * (math.Exp(dvMS/(s.IspS*G0)) - 1), nil
}
