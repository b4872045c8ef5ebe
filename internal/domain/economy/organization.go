package economy

import (
	"time"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// Ledger constants, all in game seconds and USD.
const (
	MonthSeconds      = 30 * 86400.0
	WeekSeconds       = 7 * 86400.0
	MonthlyIncomeUSD  = 1e9
	TeamCostPerMonth  = 1.5e8
	PointsPerTeamWeek = 5.0
)

// Organization is the per-tenant ledger. Balance and research points are
// settle-on-access: they are never read without first folding in the
// accruals for the game time elapsed since the last settlement.
type Organization struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BalanceUSD     float64   `json:"balance_usd"`
	ResearchPoints float64   `json:"research_points"`
	LastSettledAt  time.Time `json:"last_settled_at"`
}

// NewOrganization creates an organization settled at the given time.
func NewOrganization(id, name string, now time.Time) (*Organization, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	return &Organization{ID: id, Name: name, LastSettledAt: now}, nil
}

// Settle accrues income, team upkeep and research points for the game
// time elapsed since the last settlement, then advances the watermark.
// Settlement is monotone: a non-positive elapsed interval is a no-op.
func (o *Organization) Settle(now time.Time, activeTeams int) {
	dt := now.Sub(o.LastSettledAt).Seconds()
	if dt <= 0 {
		return
	}

	months := dt / MonthSeconds
	weeks := dt / WeekSeconds

	o.BalanceUSD += months * MonthlyIncomeUSD
	o.BalanceUSD -= float64(activeTeams) * months * TeamCostPerMonth
	o.ResearchPoints += float64(activeTeams) * weeks * PointsPerTeamWeek
	o.LastSettledAt = now
}

// DebitBalance removes funds, guarding against overdraft.
func (o *Organization) DebitBalance(amountUSD float64) error {
	if o.BalanceUSD < amountUSD {
		return shared.NewInsufficientFundsError(amountUSD, o.BalanceUSD)
	}
	o.BalanceUSD -= amountUSD
	return nil
}

// DebitPoints removes research points, guarding against overdraw.
func (o *Organization) DebitPoints(points float64) error {
	if o.ResearchPoints < points {
		return shared.NewInsufficientPointsError(points, o.ResearchPoints)
	}
	o.ResearchPoints -= points
	return nil
}

// TeamStatusActive is the only team status in the current model.
const TeamStatusActive = "active"

// ResearchTeam is a hired research unit accruing points and upkeep.
type ResearchTeam struct {
	ID              string    `json:"id"`
	OrgID           string    `json:"org_id"`
	HiredAt         time.Time `json:"hired_at"`
	CostPerMonthUSD float64   `json:"cost_per_month_usd"`
	PointsPerWeek   float64   `json:"points_per_week"`
	Status          string    `json:"status"`
}

// ResearchUnlock records one technology unlocked by an organization.
type ResearchUnlock struct {
	OrgID      string    `json:"org_id"`
	TechID     string    `json:"tech_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
	CostPoints float64   `json:"cost_points"`
}

// OrgMember links a user account to an organization.
type OrgMember struct {
	Username string `json:"username"`
	OrgID    string `json:"org_id"`
}
