package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
)

// EconomyRepositoryGORM implements organization/ledger persistence using GORM
type EconomyRepositoryGORM struct {
	db *gorm.DB
}

// NewEconomyRepository creates a new GORM-based economy repository
func NewEconomyRepository(db *gorm.DB) *EconomyRepositoryGORM {
	return &EconomyRepositoryGORM{db: db}
}

// FindOrg retrieves one organization, nil when absent
func (r *EconomyRepositoryGORM) FindOrg(ctx context.Context, id string) (*economy.Organization, error) {
	var model OrganizationModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return &economy.Organization{
		ID:             model.ID,
		Name:           model.Name,
		BalanceUSD:     model.BalanceUSD,
		ResearchPoints: model.ResearchPoints,
		LastSettledAt:  model.LastSettledAt,
	}, nil
}

// FindAllOrgs retrieves every organization
func (r *EconomyRepositoryGORM) FindAllOrgs(ctx context.Context) ([]*economy.Organization, error) {
	var models []OrganizationModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	out := make([]*economy.Organization, len(models))
	for i, m := range models {
		out[i] = &economy.Organization{
			ID:             m.ID,
			Name:           m.Name,
			BalanceUSD:     m.BalanceUSD,
			ResearchPoints: m.ResearchPoints,
			LastSettledAt:  m.LastSettledAt,
		}
	}
	return out, nil
}

// SaveOrg upserts an organization keyed by id
func (r *EconomyRepositoryGORM) SaveOrg(ctx context.Context, org *economy.Organization) error {
	model := &OrganizationModel{
		ID:             org.ID,
		Name:           org.Name,
		BalanceUSD:     org.BalanceUSD,
		ResearchPoints: org.ResearchPoints,
		LastSettledAt:  org.LastSettledAt,
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "balance_usd", "research_points", "last_settled_at"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

// FindTeam retrieves one research team, nil when absent
func (r *EconomyRepositoryGORM) FindTeam(ctx context.Context, teamID string) (*economy.ResearchTeam, error) {
	var model ResearchTeamModel
	err := conn(ctx, r.db).Where("id = ?", teamID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return &economy.ResearchTeam{
		ID:              model.ID,
		OrgID:           model.OrgID,
		HiredAt:         model.HiredAt,
		CostPerMonthUSD: model.CostPerMonthUSD,
		PointsPerWeek:   model.PointsPerWeek,
		Status:          model.Status,
	}, nil
}

// FindActiveTeams retrieves an org's active research teams
func (r *EconomyRepositoryGORM) FindActiveTeams(ctx context.Context, orgID string) ([]economy.ResearchTeam, error) {
	var models []ResearchTeamModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND status = ?", orgID, economy.TeamStatusActive).
		Order("hired_at, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	out := make([]economy.ResearchTeam, len(models))
	for i, m := range models {
		out[i] = economy.ResearchTeam{
			ID:              m.ID,
			OrgID:           m.OrgID,
			HiredAt:         m.HiredAt,
			CostPerMonthUSD: m.CostPerMonthUSD,
			PointsPerWeek:   m.PointsPerWeek,
			Status:          m.Status,
		}
	}
	return out, nil
}

// CountActiveTeams counts an org's active research teams
func (r *EconomyRepositoryGORM) CountActiveTeams(ctx context.Context, orgID string) (int, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&ResearchTeamModel{}).
		Where("org_id = ? AND status = ?", orgID, economy.TeamStatusActive).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return int(count), nil
}

// SaveTeam upserts a research team keyed by id
func (r *EconomyRepositoryGORM) SaveTeam(ctx context.Context, team economy.ResearchTeam) error {
	model := &ResearchTeamModel{
		ID:              team.ID,
		OrgID:           team.OrgID,
		HiredAt:         team.HiredAt,
		CostPerMonthUSD: team.CostPerMonthUSD,
		PointsPerWeek:   team.PointsPerWeek,
		Status:          team.Status,
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"org_id", "hired_at", "cost_per_month_usd", "points_per_week", "status"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	return nil
}

// DeleteTeam removes a team row
func (r *EconomyRepositoryGORM) DeleteTeam(ctx context.Context, teamID string) error {
	if err := conn(ctx, r.db).Where("id = ?", teamID).Delete(&ResearchTeamModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// FindUnlocks retrieves an org's unlocked technologies
func (r *EconomyRepositoryGORM) FindUnlocks(ctx context.Context, orgID string) ([]economy.ResearchUnlock, error) {
	var models []ResearchUnlockModel
	err := conn(ctx, r.db).
		Where("org_id = ?", orgID).
		Order("unlocked_at, tech_id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unlocks: %w", err)
	}
	out := make([]economy.ResearchUnlock, len(models))
	for i, m := range models {
		out[i] = economy.ResearchUnlock{
			OrgID:      m.OrgID,
			TechID:     m.TechID,
			UnlockedAt: m.UnlockedAt,
			CostPoints: m.CostPoints,
		}
	}
	return out, nil
}

// HasUnlock reports whether the org has unlocked a technology
func (r *EconomyRepositoryGORM) HasUnlock(ctx context.Context, orgID, techID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&ResearchUnlockModel{}).
		Where("org_id = ? AND tech_id = ?", orgID, techID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check unlock: %w", err)
	}
	return count > 0, nil
}

// SaveUnlock inserts an unlock; the (org_id, tech_id) key makes retries idempotent
func (r *EconomyRepositoryGORM) SaveUnlock(ctx context.Context, unlock economy.ResearchUnlock) error {
	model := &ResearchUnlockModel{
		OrgID:      unlock.OrgID,
		TechID:     unlock.TechID,
		UnlockedAt: unlock.UnlockedAt,
		CostPoints: unlock.CostPoints,
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "tech_id"}},
		DoNothing: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save unlock: %w", err)
	}
	return nil
}

// FindMemberOrg returns the org id for a username, "" when unknown
func (r *EconomyRepositoryGORM) FindMemberOrg(ctx context.Context, username string) (string, error) {
	var model OrgMemberModel
	err := conn(ctx, r.db).Where("username = ?", username).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find member: %w", err)
	}
	return model.OrgID, nil
}

// SaveMember upserts a username -> org mapping
func (r *EconomyRepositoryGORM) SaveMember(ctx context.Context, member economy.OrgMember) error {
	model := &OrgMemberModel{Username: member.Username, OrgID: member.OrgID}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"org_id"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

// SaveBoost appends a boost audit row
func (r *EconomyRepositoryGORM) SaveBoost(ctx context.Context, boost economy.LeoBoost) error {
	model := &LeoBoostModel{
		ID:                    boost.ID,
		OrgID:                 boost.OrgID,
		ItemID:                boost.ItemID,
		ItemName:              boost.ItemName,
		Quantity:              boost.Quantity,
		MassKg:                boost.MassKg,
		CostUSD:               boost.CostUSD,
		BoostedAt:             boost.BoostedAt,
		DestinationLocationID: boost.DestinationLocationID,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save boost: %w", err)
	}
	return nil
}
