package location

import (
	"fmt"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// Location is a node in the orbital network: a body, an orbit, a surface
// site, or a group that only organizes the tree for display.
//
// Invariants:
// - a non-group location may host ships and inventory; a group may not
// - the parent tree is acyclic; roots have an empty ParentID
// - X,Y are ground-truth km in the heliocentric plane; groups inherit
//   their parent body's position
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  string  `json:"parent_id,omitempty"`
	IsGroup   bool    `json:"is_group"`
	SortOrder int     `json:"sort_order"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// NewLocation creates a location with validation.
func NewLocation(id, name string) (*Location, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	return &Location{ID: id, Name: name}, nil
}

func (l *Location) String() string {
	return fmt.Sprintf("Location(%s)", l.ID)
}

// TransferEdge is a directed maneuver between two non-group locations.
type TransferEdge struct {
	FromID string  `json:"from_id"`
	ToID   string  `json:"to_id"`
	DvMS   float64 `json:"dv_m_s"`
	TofS   float64 `json:"tof_s"`
}

// NewTransferEdge creates an edge with validation.
func NewTransferEdge(fromID, toID string, dvMS, tofS float64) (*TransferEdge, error) {
	if fromID == "" || toID == "" {
		return nil, shared.NewValidationError("edge", "endpoints cannot be empty")
	}
	if fromID == toID {
		return nil, shared.NewValidationError("edge", "endpoints must differ")
	}
	if dvMS < 0 {
		return nil, shared.NewValidationError("dv_m_s", "cannot be negative")
	}
	if tofS < 0 {
		return nil, shared.NewValidationError("tof_s", "cannot be negative")
	}
	return &TransferEdge{FromID: fromID, ToID: toID, DvMS: dvMS, TofS: tofS}, nil
}

// SurfaceSite marks a landable non-group location on a body's surface.
type SurfaceSite struct {
	LocationID  string  `json:"location_id"`
	BodyID      string  `json:"body_id"`
	OrbitNodeID string  `json:"orbit_node_id"`
	GravityMS2  float64 `json:"gravity_m_s2"`
}

// SurfaceSiteResource is the ground-truth share of one resource at a site.
// Fractions per site sum to at most 1; the seed data enforces this.
type SurfaceSiteResource struct {
	SiteLocationID string  `json:"site_location_id"`
	ResourceID     string  `json:"resource_id"`
	MassFraction   float64 `json:"mass_fraction"`
}
