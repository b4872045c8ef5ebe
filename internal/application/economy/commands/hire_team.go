package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	appEconomy "github.com/RocketManDan1/Frontier-sub001/internal/application/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/pkg/utils"
)

// HireTeamCommand hires one research team for an organization.
type HireTeamCommand struct {
	OrgID string
}

// HireTeamResponse carries the new team and the post-debit balance.
type HireTeamResponse struct {
	Team       economy.ResearchTeam
	BalanceUSD float64
}

// HireTeamHandler settles, debits the first month up front and inserts
// the team, all inside one unit of work.
type HireTeamHandler struct {
	service *appEconomy.Service
	uow     common.UnitOfWork
}

func NewHireTeamHandler(service *appEconomy.Service, uow common.UnitOfWork) *HireTeamHandler {
	return &HireTeamHandler{service: service, uow: uow}
}

func (h *HireTeamHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*HireTeamCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	var resp *HireTeamResponse
	err := h.uow.Do(ctx, func(ctx context.Context) error {
		org, _, err := h.service.SettleOrg(ctx, cmd.OrgID)
		if err != nil {
			return err
		}

		if err := org.DebitBalance(economy.TeamCostPerMonth); err != nil {
			return err
		}

		team := economy.ResearchTeam{
			ID:              utils.NewEntityID("team"),
			OrgID:           cmd.OrgID,
			HiredAt:         h.service.Clock().Now(),
			CostPerMonthUSD: economy.TeamCostPerMonth,
			PointsPerWeek:   economy.PointsPerTeamWeek,
			Status:          economy.TeamStatusActive,
		}

		if err := h.service.Repo().SaveOrg(ctx, org); err != nil {
			return fmt.Errorf("failed to save organization: %w", err)
		}
		if err := h.service.Repo().SaveTeam(ctx, team); err != nil {
			return fmt.Errorf("failed to save team: %w", err)
		}

		resp = &HireTeamResponse{Team: team, BalanceUSD: org.BalanceUSD}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Org %s hired research team %s", cmd.OrgID, resp.Team.ID)
	return resp, nil
}
