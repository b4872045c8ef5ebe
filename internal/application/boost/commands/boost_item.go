package commands

import (
	"context"
	"fmt"
	"log"

	appBoost "github.com/RocketManDan1/Frontier-sub001/internal/application/boost"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	appEconomy "github.com/RocketManDan1/Frontier-sub001/internal/application/economy"
	appInventory "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
	"github.com/RocketManDan1/Frontier-sub001/pkg/utils"
)

// BoostItemCommand launches catalog items from Earth into the LEO depot.
// Quantity counts units for parts and kilograms for the fuel resource.
type BoostItemCommand struct {
	OrgID    string
	ItemID   string
	Quantity int
}

// BoostItemResponse reports the completed launch.
type BoostItemResponse struct {
	Boost      economy.LeoBoost
	BalanceUSD float64
}

// BoostItemHandler settles, gates, prices, debits and credits the LEO
// inventory, in that order, all inside one unit of work.
type BoostItemHandler struct {
	economySvc    *appEconomy.Service
	boostSvc      *appBoost.Service
	inventorySvc  *appInventory.Service
	registry      *catalog.Registry
	leoLocationID string
	uow           common.UnitOfWork
}

func NewBoostItemHandler(
	economySvc *appEconomy.Service,
	boostSvc *appBoost.Service,
	inventorySvc *appInventory.Service,
	registry *catalog.Registry,
	leoLocationID string,
	uow common.UnitOfWork,
) *BoostItemHandler {
	return &BoostItemHandler{
		economySvc:    economySvc,
		boostSvc:      boostSvc,
		inventorySvc:  inventorySvc,
		registry:      registry,
		leoLocationID: leoLocationID,
		uow:           uow,
	}
}

func (h *BoostItemHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BoostItemCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.Quantity <= 0 {
		return nil, shared.NewValidationError("quantity", "must be positive")
	}

	var resp *BoostItemResponse
	err := h.uow.Do(ctx, func(ctx context.Context) error {
		org, _, err := h.economySvc.SettleOrg(ctx, cmd.OrgID)
		if err != nil {
			return err
		}

		item, eligible, err := h.boostSvc.Find(ctx, cmd.OrgID, cmd.ItemID)
		if err != nil {
			return err
		}
		if !eligible {
			return shared.NewNotBoostableError(cmd.ItemID)
		}

		totalMass := item.MassPerUnitKg * float64(cmd.Quantity)
		cost := economy.CalculateBoostCost(totalMass)
		if err := org.DebitBalance(cost); err != nil {
			return err
		}

		if cmd.ItemID == ship.FuelResourceID {
			err = h.inventorySvc.DepositResource(ctx, h.leoLocationID, ship.FuelResourceID, totalMass)
		} else {
			err = h.depositPart(ctx, cmd.ItemID, cmd.Quantity)
		}
		if err != nil {
			return err
		}

		boost := economy.LeoBoost{
			ID:                    utils.NewEntityID("boost"),
			OrgID:                 cmd.OrgID,
			ItemID:                cmd.ItemID,
			ItemName:              item.Name,
			Quantity:              cmd.Quantity,
			MassKg:                totalMass,
			CostUSD:               cost,
			BoostedAt:             h.economySvc.Clock().Now(),
			DestinationLocationID: h.leoLocationID,
		}

		repo := h.economySvc.Repo()
		if err := repo.SaveOrg(ctx, org); err != nil {
			return fmt.Errorf("failed to save organization: %w", err)
		}
		if err := repo.SaveBoost(ctx, boost); err != nil {
			return fmt.Errorf("failed to save boost record: %w", err)
		}

		resp = &BoostItemResponse{Boost: boost, BalanceUSD: org.BalanceUSD}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Org %s boosted %dx %s (%.0f kg, $%.0f) to %s",
		cmd.OrgID, cmd.Quantity, cmd.ItemID, resp.Boost.MassKg, resp.Boost.CostUSD, h.leoLocationID)
	return resp, nil
}

func (h *BoostItemHandler) depositPart(ctx context.Context, itemID string, quantity int) error {
	entry, ok := h.registry.Lookup(itemID)
	if !ok {
		return shared.NewNotFoundError("catalog item", itemID)
	}
	part := parts.FromRaw(entry.Record)
	part.ItemID = itemID
	normalized := parts.Normalize([]parts.Part{part}, h.registry)
	return h.inventorySvc.DepositPart(ctx, h.leoLocationID, normalized[0], quantity)
}
