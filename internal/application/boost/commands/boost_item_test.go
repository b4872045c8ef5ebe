package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterCatalog "github.com/RocketManDan1/Frontier-sub001/internal/adapters/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	appBoost "github.com/RocketManDan1/Frontier-sub001/internal/application/boost"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/boost/commands"
	appEconomy "github.com/RocketManDan1/Frontier-sub001/internal/application/economy"
	appInventory "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/test/helpers"
)

type boostFixture struct {
	economies   *persistence.EconomyRepositoryGORM
	inventories *persistence.InventoryRepositoryGORM
	inventory   *appInventory.Service
	handler     *commands.BoostItemHandler
	boostSvc    *appBoost.Service
	reg         *catalog.Registry
	clock       *shared.GameClock
	uow         *persistence.UnitOfWorkGORM
}

func newBoostFixture(t *testing.T) *boostFixture {
	t.Helper()
	db := helpers.NewTestDB(t)
	reg, err := catalog.NewRegistry(adapterCatalog.NewBuiltinSource())
	require.NoError(t, err)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := shared.NewGameClock(wall, 48)

	economies := persistence.NewEconomyRepository(db)
	inventories := persistence.NewInventoryRepository(db)
	economySvc := appEconomy.NewService(economies, clock)
	inventorySvc := appInventory.NewService(inventories, reg, clock)
	boostSvc := appBoost.NewService(reg, economies)
	uow := persistence.NewUnitOfWork(db)

	return &boostFixture{
		economies:   economies,
		inventories: inventories,
		inventory:   inventorySvc,
		handler:     commands.NewBoostItemHandler(economySvc, boostSvc, inventorySvc, reg, "leo", uow),
		boostSvc:    boostSvc,
		reg:         reg,
		clock:       clock,
		uow:         uow,
	}
}

// brokenBoostStore delegates everything except SaveBoost, which fails.
type brokenBoostStore struct {
	economy.Repository
}

func (s *brokenBoostStore) SaveBoost(ctx context.Context, boost economy.LeoBoost) error {
	return errors.New("disk full")
}

func (f *boostFixture) seedOrg(t *testing.T, balance float64, unlocks ...string) {
	t.Helper()
	ctx := context.Background()
	org, err := economy.NewOrganization("org-1", "Frontier Resources", f.clock.Now())
	require.NoError(t, err)
	org.BalanceUSD = balance
	require.NoError(t, f.economies.SaveOrg(ctx, org))
	for _, techID := range unlocks {
		require.NoError(t, f.economies.SaveUnlock(ctx, economy.ResearchUnlock{
			OrgID: "org-1", TechID: techID, UnlockedAt: f.clock.Now(),
		}))
	}
}

func TestBoostItem_PartDebitsCostAndCreditsLeo(t *testing.T) {
	// Arrange - solid-core NTR unlocked, 2200 kg per unit
	f := newBoostFixture(t)
	f.seedOrg(t, 1e9, "thr.ntr_solid_core")
	ctx := context.Background()

	// Act
	resp, err := f.handler.Handle(ctx, &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "ntr_solid_core", Quantity: 1,
	})

	// Assert - balance drops by base + per-kg, one part unit lands at leo
	require.NoError(t, err)
	boosted := resp.(*commands.BoostItemResponse)
	wantCost := 1e8 + 5e3*2200
	assert.InDelta(t, wantCost, boosted.Boost.CostUSD, 1e-6)
	assert.InDelta(t, 1e9-wantCost, boosted.BalanceUSD, 1e-6)
	assert.Equal(t, "leo", boosted.Boost.DestinationLocationID)

	stacks, err := f.inventory.StacksAt(ctx, "leo")
	require.NoError(t, err)
	require.Len(t, stacks, 1)
	assert.Equal(t, inventory.StackTypePart, stacks[0].StackType)
	assert.Equal(t, "ntr_solid_core", stacks[0].ItemID)
	assert.Equal(t, 1.0, stacks[0].Quantity)
	assert.InDelta(t, 2200, stacks[0].MassKg, 1e-9)
}

func TestBoostItem_WaterNeedsNoUnlock(t *testing.T) {
	// Arrange - no unlocks at all
	f := newBoostFixture(t)
	f.seedOrg(t, 5e8)
	ctx := context.Background()

	// Act - quantity counts kilograms for the fuel resource
	resp, err := f.handler.Handle(ctx, &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "water", Quantity: 10000,
	})

	// Assert
	require.NoError(t, err)
	boosted := resp.(*commands.BoostItemResponse)
	assert.InDelta(t, 1e8+5e3*10000, boosted.Boost.CostUSD, 1e-6)

	stack, err := f.inventories.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	require.NotNil(t, stack)
	assert.InDelta(t, 10000, stack.MassKg, 1e-9)
}

func TestBoostItem_LockedTechIsNotBoostable(t *testing.T) {
	f := newBoostFixture(t)
	f.seedOrg(t, 1e9)

	_, err := f.handler.Handle(context.Background(), &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "ntr_solid_core", Quantity: 1,
	})

	var boostErr *shared.NotBoostableError
	assert.ErrorAs(t, err, &boostErr)
}

func TestBoostItem_HighTechLevelNeverBoostable(t *testing.T) {
	// Gas-core NTR is tech level 3; unlocking its node does not help.
	f := newBoostFixture(t)
	f.seedOrg(t, 1e10, "thr.ntr_gas_core")

	_, err := f.handler.Handle(context.Background(), &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "ntr_gas_core", Quantity: 1,
	})

	var boostErr *shared.NotBoostableError
	assert.ErrorAs(t, err, &boostErr)
}

func TestBoostItem_FractionalTechLevelNeverBoostable(t *testing.T) {
	// Droplet radiator sits at tech level 2.5.
	f := newBoostFixture(t)
	f.seedOrg(t, 1e10, "rad.droplet_radiator")

	_, err := f.handler.Handle(context.Background(), &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "droplet_radiator", Quantity: 1,
	})

	var boostErr *shared.NotBoostableError
	assert.ErrorAs(t, err, &boostErr)
}

func TestBoostItem_InsufficientFundsLeavesInventoryEmpty(t *testing.T) {
	f := newBoostFixture(t)
	f.seedOrg(t, 1e6, "thr.ntr_solid_core")
	ctx := context.Background()

	_, err := f.handler.Handle(ctx, &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "ntr_solid_core", Quantity: 1,
	})

	var fundsErr *shared.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)

	stacks, err := f.inventory.StacksAt(ctx, "leo")
	require.NoError(t, err)
	assert.Empty(t, stacks)
}

func TestBoostItem_StoreFailureRollsBackDebitAndDeposit(t *testing.T) {
	// Arrange - the audit-row insert fails after the debit and deposit
	f := newBoostFixture(t)
	f.seedOrg(t, 1e9, "thr.ntr_solid_core")
	ctx := context.Background()
	broken := &brokenBoostStore{Repository: f.economies}
	handler := commands.NewBoostItemHandler(
		appEconomy.NewService(broken, f.clock),
		appBoost.NewService(f.reg, broken),
		f.inventory, f.reg, "leo", f.uow)

	// Act
	_, err := handler.Handle(ctx, &commands.BoostItemCommand{
		OrgID: "org-1", ItemID: "ntr_solid_core", Quantity: 1,
	})

	// Assert - the whole unit rolled back: no debit, no free inventory
	require.Error(t, err)
	org, findErr := f.economies.FindOrg(ctx, "org-1")
	require.NoError(t, findErr)
	assert.InDelta(t, 1e9, org.BalanceUSD, 1e-6)
	stacks, findErr := f.inventory.StacksAt(ctx, "leo")
	require.NoError(t, findErr)
	assert.Empty(t, stacks)
}

func TestBoostableItems_WaterAlwaysListed(t *testing.T) {
	// Arrange
	f := newBoostFixture(t)
	f.seedOrg(t, 0, "sto.water_tank_sm")

	// Act
	items, err := f.boostSvc.BoostableItems(context.Background(), "org-1")

	// Assert - the unlocked tank plus water, sorted by item id
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "water", items[0].ItemID)
	assert.Equal(t, "water_tank_sm", items[1].ItemID)
	assert.Equal(t, 1.0, items[0].MassPerUnitKg)
}
