package economy

import "time"

// Boost pricing: a fixed launch cost plus a per-kilogram rate.
const (
	BoostBaseCostUSD = 1e8
	BoostCostPerKg   = 5e3
)

// BoostableTechLevels are the catalog tech levels eligible for boosting.
// Membership is exact integer membership; fractional levels are not
// boostable.
var BoostableTechLevels = map[int]bool{1: true, 2: true}

// CalculateBoostCost prices an Earth-to-orbit launch of the given mass.
func CalculateBoostCost(totalMassKg float64) float64 {
	return BoostBaseCostUSD + BoostCostPerKg*totalMassKg
}

// LeoBoost records one completed boost for the audit ledger.
type LeoBoost struct {
	ID                    string    `json:"id"`
	OrgID                 string    `json:"org_id"`
	ItemID                string    `json:"item_id"`
	ItemName              string    `json:"item_name"`
	Quantity              int       `json:"quantity"`
	MassKg                float64   `json:"mass_kg"`
	CostUSD               float64   `json:"cost_usd"`
	BoostedAt             time.Time `json:"boosted_at"`
	DestinationLocationID string    `json:"destination_location_id"`
}
