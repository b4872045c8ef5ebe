package location

import "time"

// ProspectingResult is one revealed resource fraction in an organization's
// visibility overlay. A site counts as prospected for an org iff at least
// one result row exists for the pair.
type ProspectingResult struct {
	OrgID            string    `json:"org_id"`
	SiteLocationID   string    `json:"site_location_id"`
	ResourceID       string    `json:"resource_id"`
	MassFraction     float64   `json:"mass_fraction"`
	ProspectedAt     time.Time `json:"prospected_at"`
	ProspectedByShip string    `json:"prospected_by_ship"`
}
