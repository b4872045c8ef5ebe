package persistence

import (
	"time"
)

// LocationModel represents the locations table
type LocationModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name;not null"`
	ParentID  string  `gorm:"column:parent_id"`
	IsGroup   int     `gorm:"column:is_group;not null;default:0"` // 0 or 1 (SQLite compatible)
	SortOrder int     `gorm:"column:sort_order;not null;default:0"`
	X         float64 `gorm:"column:x;not null;default:0"` // heliocentric km
	Y         float64 `gorm:"column:y;not null;default:0"`
}

func (LocationModel) TableName() string {
	return "locations"
}

// TransferEdgeModel represents the transfer_edges table
type TransferEdgeModel struct {
	FromID string  `gorm:"column:from_id;primaryKey"`
	ToID   string  `gorm:"column:to_id;primaryKey"`
	DvMS   float64 `gorm:"column:dv_m_s;not null"`
	TofS   float64 `gorm:"column:tof_s;not null"`
	Seq    int     `gorm:"column:seq;not null;default:0"` // insertion order for deterministic ties
}

func (TransferEdgeModel) TableName() string {
	return "transfer_edges"
}

// TransferMatrixModel represents the transfer_matrix cache table
type TransferMatrixModel struct {
	FromID string  `gorm:"column:from_id;primaryKey"`
	ToID   string  `gorm:"column:to_id;primaryKey"`
	DvMS   float64 `gorm:"column:dv_m_s;not null"`
	TofS   float64 `gorm:"column:tof_s;not null"`
	Path   string  `gorm:"column:path;type:text;not null"` // JSON array as text
}

func (TransferMatrixModel) TableName() string {
	return "transfer_matrix"
}

// SurfaceSiteModel represents the surface_sites table
type SurfaceSiteModel struct {
	LocationID  string  `gorm:"column:location_id;primaryKey"`
	BodyID      string  `gorm:"column:body_id;not null"`
	OrbitNodeID string  `gorm:"column:orbit_node_id"`
	GravityMS2  float64 `gorm:"column:gravity_m_s2;not null;default:0"`
}

func (SurfaceSiteModel) TableName() string {
	return "surface_sites"
}

// SurfaceSiteResourceModel represents the surface_site_resources table
// (ground truth, hidden from orgs until prospected)
type SurfaceSiteResourceModel struct {
	SiteLocationID string  `gorm:"column:site_location_id;primaryKey"`
	ResourceID     string  `gorm:"column:resource_id;primaryKey"`
	MassFraction   float64 `gorm:"column:mass_fraction;not null"`
}

func (SurfaceSiteResourceModel) TableName() string {
	return "surface_site_resources"
}

// ShipModel represents the ships table
type ShipModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	Name           string     `gorm:"column:name;not null"`
	Skin           string     `gorm:"column:skin"`
	Color          string     `gorm:"column:color"`
	LocationID     string     `gorm:"column:location_id"` // empty while in transit
	FromLocationID string     `gorm:"column:from_location_id"`
	ToLocationID   string     `gorm:"column:to_location_id"`
	DepartedAt     *time.Time `gorm:"column:departed_at"`
	ArrivesAt      *time.Time `gorm:"column:arrives_at;index"`
	TransferPath   string     `gorm:"column:transfer_path;type:text"` // JSON array as text
	Parts          string     `gorm:"column:parts;type:text;not null"` // JSON array as text
	FuelKg         float64    `gorm:"column:fuel_kg;not null;default:0"`
}

func (ShipModel) TableName() string {
	return "ships"
}

// InventoryStackModel represents the inventory_stacks table
type InventoryStackModel struct {
	LocationID string    `gorm:"column:location_id;primaryKey"`
	StackType  string    `gorm:"column:stack_type;primaryKey"`
	StackKey   string    `gorm:"column:stack_key;primaryKey"`
	ItemID     string    `gorm:"column:item_id;index"`
	Name       string    `gorm:"column:name"`
	Quantity   float64   `gorm:"column:quantity;not null;default:0"`
	MassKg     float64   `gorm:"column:mass_kg;not null;default:0"`
	VolumeM3   float64   `gorm:"column:volume_m3;not null;default:0"`
	Payload    string    `gorm:"column:payload;type:text"` // normalized part JSON
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (InventoryStackModel) TableName() string {
	return "inventory_stacks"
}

// OrganizationModel represents the organizations table
type OrganizationModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	BalanceUSD     float64   `gorm:"column:balance_usd;not null;default:0"`
	ResearchPoints float64   `gorm:"column:research_points;not null;default:0"`
	LastSettledAt  time.Time `gorm:"column:last_settled_at;not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

// ResearchTeamModel represents the research_teams table
type ResearchTeamModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	OrgID           string    `gorm:"column:org_id;index;not null"`
	HiredAt         time.Time `gorm:"column:hired_at;not null"`
	CostPerMonthUSD float64   `gorm:"column:cost_per_month_usd;not null"`
	PointsPerWeek   float64   `gorm:"column:points_per_week;not null"`
	Status          string    `gorm:"column:status;not null;default:'active'"`
}

func (ResearchTeamModel) TableName() string {
	return "research_teams"
}

// ResearchUnlockModel represents the research_unlocks table
type ResearchUnlockModel struct {
	OrgID      string    `gorm:"column:org_id;primaryKey"`
	TechID     string    `gorm:"column:tech_id;primaryKey"`
	UnlockedAt time.Time `gorm:"column:unlocked_at;not null"`
	CostPoints float64   `gorm:"column:cost_points;not null"`
}

func (ResearchUnlockModel) TableName() string {
	return "research_unlocks"
}

// OrgMemberModel represents the org_members table
type OrgMemberModel struct {
	Username string `gorm:"column:username;primaryKey"`
	OrgID    string `gorm:"column:org_id;index;not null"`
}

func (OrgMemberModel) TableName() string {
	return "org_members"
}

// LeoBoostModel represents the leo_boosts audit table
type LeoBoostModel struct {
	ID                    string    `gorm:"column:id;primaryKey"`
	OrgID                 string    `gorm:"column:org_id;index;not null"`
	ItemID                string    `gorm:"column:item_id;not null"`
	ItemName              string    `gorm:"column:item_name"`
	Quantity              int       `gorm:"column:quantity;not null"`
	MassKg                float64   `gorm:"column:mass_kg;not null"`
	CostUSD               float64   `gorm:"column:cost_usd;not null"`
	BoostedAt             time.Time `gorm:"column:boosted_at;not null"`
	DestinationLocationID string    `gorm:"column:destination_location_id;not null"`
}

func (LeoBoostModel) TableName() string {
	return "leo_boosts"
}

// ProspectingResultModel represents the prospecting_results table
// (per-org visibility overlay)
type ProspectingResultModel struct {
	OrgID            string    `gorm:"column:org_id;primaryKey"`
	SiteLocationID   string    `gorm:"column:site_location_id;primaryKey"`
	ResourceID       string    `gorm:"column:resource_id;primaryKey"`
	MassFraction     float64   `gorm:"column:mass_fraction;not null"`
	ProspectedAt     time.Time `gorm:"column:prospected_at;not null"`
	ProspectedByShip string    `gorm:"column:prospected_by_ship"`
}

func (ProspectingResultModel) TableName() string {
	return "prospecting_results"
}

// MetaModel represents the meta key/value table (edges hash, sim clock)
type MetaModel struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;type:text;not null"`
}

func (MetaModel) TableName() string {
	return "meta"
}

// AllModels lists every model for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&LocationModel{},
		&TransferEdgeModel{},
		&TransferMatrixModel{},
		&SurfaceSiteModel{},
		&SurfaceSiteResourceModel{},
		&ShipModel{},
		&InventoryStackModel{},
		&OrganizationModel{},
		&ResearchTeamModel{},
		&ResearchUnlockModel{},
		&OrgMemberModel{},
		&LeoBoostModel{},
		&ProspectingResultModel{},
		&MetaModel{},
	}
}
