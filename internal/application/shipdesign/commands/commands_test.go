package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterCatalog "github.com/RocketManDan1/Frontier-sub001/internal/adapters/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	appInventory "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/shipdesign/commands"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
	"github.com/RocketManDan1/Frontier-sub001/test/helpers"
)

type designFixture struct {
	ships     *persistence.ShipRepositoryGORM
	inventory *appInventory.Service
	repo      *persistence.InventoryRepositoryGORM
	reg       *catalog.Registry
	clock     *shared.GameClock
	uow       *persistence.UnitOfWorkGORM
}

func newDesignFixture(t *testing.T) *designFixture {
	t.Helper()
	db := helpers.NewTestDB(t)
	reg, err := catalog.NewRegistry(adapterCatalog.NewBuiltinSource())
	require.NoError(t, err)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := shared.NewGameClock(wall, 48)
	repo := persistence.NewInventoryRepository(db)
	return &designFixture{
		ships:     persistence.NewShipRepository(db, reg),
		inventory: appInventory.NewService(repo, reg, clock),
		repo:      repo,
		reg:       reg,
		clock:     clock,
		uow:       persistence.NewUnitOfWork(db),
	}
}

func (f *designFixture) seedShip(t *testing.T, fuelKg float64, itemIDs ...string) *ship.Ship {
	t.Helper()
	raw := make([]parts.Part, len(itemIDs))
	for i, id := range itemIDs {
		raw[i] = parts.Part{ItemID: id}
	}
	partList := parts.Normalize(raw, f.reg)
	ship.HardenContainers(partList, fuelKg)
	s, err := ship.NewShip("ship-1", "Test Vessel", "leo", partList, fuelKg)
	require.NoError(t, err)
	require.NoError(t, f.ships.Save(context.Background(), s))
	return s
}

func TestDeconstructShip_ReturnsPartsAndFuel(t *testing.T) {
	// Arrange - thruster plus a tank carrying 5000 kg of water
	f := newDesignFixture(t)
	f.seedShip(t, 5000, "ntr_solid_core", "water_tank_lg")
	ctx := context.Background()
	handler := commands.NewDeconstructShipHandler(f.ships, f.inventory, f.uow)

	// Act
	resp, err := handler.Handle(ctx, &commands.DeconstructShipCommand{ShipID: "ship-1"})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.DeconstructShipResponse)
	assert.Equal(t, "leo", result.LocationID)
	assert.Equal(t, 2, result.PartsReturned)
	assert.InDelta(t, 5000, result.FuelReturnedKg, 1e-9)

	gone, err := f.ships.FindByID(ctx, "ship-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Parts land as bare units, the fuel as a water resource stack.
	stacks, err := f.inventory.StacksAt(ctx, "leo")
	require.NoError(t, err)
	require.Len(t, stacks, 3)
	for _, st := range stacks {
		if st.StackType == inventory.StackTypePart {
			assert.Equal(t, 1.0, st.Quantity)
			assert.NotContains(t, st.Payload, "fill")
		}
	}
	water, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	require.NotNil(t, water)
	assert.InDelta(t, 5000, water.MassKg, 1e-9)
}

func TestDeconstructShip_RequiresDockedShip(t *testing.T) {
	f := newDesignFixture(t)
	s := f.seedShip(t, 20000, "ntr_solid_core", "water_tank_lg")
	ctx := context.Background()
	now := f.clock.Now()
	require.NoError(t, s.BeginTransfer("heo", now, now.Add(2*time.Hour), []string{"leo", "heo"}))
	require.NoError(t, f.ships.Save(ctx, s))

	_, err := commands.NewDeconstructShipHandler(f.ships, f.inventory, f.uow).
		Handle(ctx, &commands.DeconstructShipCommand{ShipID: "ship-1"})

	var notDocked *shared.NotDockedError
	assert.ErrorAs(t, err, &notDocked)
}

func TestDeconstructShip_UnknownShip(t *testing.T) {
	f := newDesignFixture(t)

	_, err := commands.NewDeconstructShipHandler(f.ships, f.inventory, f.uow).
		Handle(context.Background(), &commands.DeconstructShipCommand{ShipID: "nope"})

	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRefuelShip_TopsUpFromLocationStack(t *testing.T) {
	// Arrange - large tank (75 m3 = 75000 kg capacity) holding 10000 kg,
	// with 50000 kg of water on the pad
	f := newDesignFixture(t)
	f.seedShip(t, 10000, "ntr_solid_core", "water_tank_lg")
	ctx := context.Background()
	require.NoError(t, f.inventory.DepositResource(ctx, "leo", "water", 50000))
	handler := commands.NewRefuelShipHandler(f.ships, f.inventory, f.uow)

	// Act
	resp, err := handler.Handle(ctx, &commands.RefuelShipCommand{ShipID: "ship-1"})

	// Assert - tanks wanted 65000 but only 50000 was available
	require.NoError(t, err)
	refueled := resp.(*commands.RefuelShipResponse)
	assert.InDelta(t, 50000, refueled.TransferredKg, 1e-9)
	assert.InDelta(t, 60000, refueled.FuelKg, 1e-9)

	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	assert.Nil(t, stack)

	reloaded, err := f.ships.FindByID(ctx, "ship-1")
	require.NoError(t, err)
	assert.InDelta(t, 60000, reloaded.FuelKg(), 1e-9)
}

func TestRefuelShip_StopsAtCapacity(t *testing.T) {
	// Arrange - more water on the pad than the tanks can take
	f := newDesignFixture(t)
	f.seedShip(t, 70000, "ntr_solid_core", "water_tank_lg")
	ctx := context.Background()
	require.NoError(t, f.inventory.DepositResource(ctx, "leo", "water", 20000))

	// Act
	resp, err := commands.NewRefuelShipHandler(f.ships, f.inventory, f.uow).
		Handle(ctx, &commands.RefuelShipCommand{ShipID: "ship-1"})

	// Assert - only the 5000 kg shortfall moved
	require.NoError(t, err)
	refueled := resp.(*commands.RefuelShipResponse)
	assert.InDelta(t, 5000, refueled.TransferredKg, 1e-9)
	assert.InDelta(t, 75000, refueled.FuelKg, 1e-9)

	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	require.NotNil(t, stack)
	assert.InDelta(t, 15000, stack.MassKg, 1e-9)
}

func TestRefuelShip_FullTanksAreNoOp(t *testing.T) {
	f := newDesignFixture(t)
	f.seedShip(t, 75000, "ntr_solid_core", "water_tank_lg")
	ctx := context.Background()
	require.NoError(t, f.inventory.DepositResource(ctx, "leo", "water", 1000))

	resp, err := commands.NewRefuelShipHandler(f.ships, f.inventory, f.uow).
		Handle(ctx, &commands.RefuelShipCommand{ShipID: "ship-1"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.(*commands.RefuelShipResponse).TransferredKg)

	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	assert.InDelta(t, 1000, stack.MassKg, 1e-9)
}

func TestRefuelShip_EmptyPadTransfersNothing(t *testing.T) {
	f := newDesignFixture(t)
	f.seedShip(t, 10000, "ntr_solid_core", "water_tank_lg")

	resp, err := commands.NewRefuelShipHandler(f.ships, f.inventory, f.uow).
		Handle(context.Background(), &commands.RefuelShipCommand{ShipID: "ship-1"})

	require.NoError(t, err)
	refueled := resp.(*commands.RefuelShipResponse)
	assert.Equal(t, 0.0, refueled.TransferredKg)
	assert.InDelta(t, 10000, refueled.FuelKg, 1e-9)
}
