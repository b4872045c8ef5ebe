package queries

import (
	"context"
	"fmt"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	appEconomy "github.com/RocketManDan1/Frontier-sub001/internal/application/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
)

// GetOrgStatusQuery asks for an organization's settled ledger view.
type GetOrgStatusQuery struct {
	OrgID string
}

// GetOrgStatusResponse is the settled snapshot.
type GetOrgStatusResponse struct {
	Org     economy.Organization
	Teams   []economy.ResearchTeam
	Unlocks []economy.ResearchUnlock
}

// GetOrgStatusHandler settles before reading, like every ledger path.
type GetOrgStatusHandler struct {
	service *appEconomy.Service
}

func NewGetOrgStatusHandler(service *appEconomy.Service) *GetOrgStatusHandler {
	return &GetOrgStatusHandler{service: service}
}

func (h *GetOrgStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetOrgStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	org, _, err := h.service.SettleOrg(ctx, query.OrgID)
	if err != nil {
		return nil, err
	}

	repo := h.service.Repo()
	teams, err := repo.FindActiveTeams(ctx, query.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	unlocks, err := repo.FindUnlocks(ctx, query.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocks: %w", err)
	}

	return &GetOrgStatusResponse{Org: *org, Teams: teams, Unlocks: unlocks}, nil
}
