package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	appEconomy "github.com/RocketManDan1/Frontier-sub001/internal/application/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// UnlockTechCommand spends research points on a technology node. Cost
// and prerequisites come from the caller's tech-tree definition; the
// core enforces them, it does not define the tree.
type UnlockTechCommand struct {
	OrgID      string
	TechID     string
	CostPoints float64
	Prereqs    []string
}

// UnlockTechResponse carries the recorded unlock and remaining points.
type UnlockTechResponse struct {
	Unlock          economy.ResearchUnlock
	RemainingPoints float64
}

// UnlockTechHandler settles, checks the unlock guards in order and
// records the unlock, all inside one unit of work.
type UnlockTechHandler struct {
	service *appEconomy.Service
	uow     common.UnitOfWork
}

func NewUnlockTechHandler(service *appEconomy.Service, uow common.UnitOfWork) *UnlockTechHandler {
	return &UnlockTechHandler{service: service, uow: uow}
}

func (h *UnlockTechHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UnlockTechCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	var resp *UnlockTechResponse
	err := h.uow.Do(ctx, func(ctx context.Context) error {
		org, _, err := h.service.SettleOrg(ctx, cmd.OrgID)
		if err != nil {
			return err
		}

		repo := h.service.Repo()
		already, err := repo.HasUnlock(ctx, cmd.OrgID, cmd.TechID)
		if err != nil {
			return fmt.Errorf("failed to check unlock: %w", err)
		}
		if already {
			return shared.NewAlreadyUnlockedError(cmd.TechID)
		}

		var missing []string
		for _, prereq := range cmd.Prereqs {
			has, err := repo.HasUnlock(ctx, cmd.OrgID, prereq)
			if err != nil {
				return fmt.Errorf("failed to check prerequisite %s: %w", prereq, err)
			}
			if !has {
				missing = append(missing, prereq)
			}
		}
		if len(missing) > 0 {
			return shared.NewPrereqMissingError(cmd.TechID, missing)
		}

		if err := org.DebitPoints(cmd.CostPoints); err != nil {
			return err
		}

		unlock := economy.ResearchUnlock{
			OrgID:      cmd.OrgID,
			TechID:     cmd.TechID,
			UnlockedAt: h.service.Clock().Now(),
			CostPoints: cmd.CostPoints,
		}

		if err := repo.SaveOrg(ctx, org); err != nil {
			return fmt.Errorf("failed to save organization: %w", err)
		}
		if err := repo.SaveUnlock(ctx, unlock); err != nil {
			return fmt.Errorf("failed to save unlock: %w", err)
		}

		resp = &UnlockTechResponse{Unlock: unlock, RemainingPoints: org.ResearchPoints}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Org %s unlocked %s for %.1f points", cmd.OrgID, cmd.TechID, cmd.CostPoints)
	return resp, nil
}
