package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// FireTeamCommand removes a research team. Firing does not settle: the
// team stops accruing from the last settlement watermark, matching the
// hire-side accounting.
type FireTeamCommand struct {
	OrgID  string
	TeamID string
}

// FireTeamResponse is empty; absence of error means the team is gone.
type FireTeamResponse struct{}

// FireTeamHandler deletes the team row after checking it belongs to
// the calling organization.
type FireTeamHandler struct {
	repo economy.Repository
}

func NewFireTeamHandler(repo economy.Repository) *FireTeamHandler {
	return &FireTeamHandler{repo: repo}
}

func (h *FireTeamHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FireTeamCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	team, err := h.repo.FindTeam(ctx, cmd.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil || team.OrgID != cmd.OrgID {
		return nil, shared.NewNotFoundError("research team", cmd.TeamID)
	}

	if err := h.repo.DeleteTeam(ctx, cmd.TeamID); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	log.Printf("Org %s fired research team %s", cmd.OrgID, cmd.TeamID)
	return &FireTeamResponse{}, nil
}
