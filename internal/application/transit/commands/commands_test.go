package commands_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterCatalog "github.com/RocketManDan1/Frontier-sub001/internal/adapters/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/transit/commands"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/routing"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
	"github.com/RocketManDan1/Frontier-sub001/test/helpers"
)

type transitFixture struct {
	ships  *persistence.ShipRepositoryGORM
	matrix *persistence.MatrixRepositoryGORM
	reg    *catalog.Registry
	wall   *shared.MockClock
	clock  *shared.GameClock
}

func newTransitFixture(t *testing.T) *transitFixture {
	t.Helper()
	db := helpers.NewTestDB(t)
	reg, err := catalog.NewRegistry(adapterCatalog.NewBuiltinSource())
	require.NoError(t, err)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return &transitFixture{
		ships:  persistence.NewShipRepository(db, reg),
		matrix: persistence.NewMatrixRepository(db),
		reg:    reg,
		wall:   wall,
		clock:  shared.NewGameClock(wall, 48),
	}
}

func (f *transitFixture) seedRoute(t *testing.T, from, to string, dv, tof float64) {
	t.Helper()
	err := f.matrix.ReplaceAll(context.Background(), []routing.MatrixEntry{
		{FromID: from, ToID: to, DvMS: dv, TofS: tof, Path: []string{from, to}},
	})
	require.NoError(t, err)
}

func (f *transitFixture) seedShip(t *testing.T, fuelKg float64) *ship.Ship {
	t.Helper()
	partList := parts.Normalize([]parts.Part{
		{ItemID: "ntr_solid_core"},
		{ItemID: "water_tank_lg"},
	}, f.reg)
	s, err := ship.NewShip("ship-1", "Test Vessel", "leo", partList, fuelKg)
	require.NoError(t, err)
	require.NoError(t, f.ships.Save(context.Background(), s))
	return s
}

func TestDispatchShip_StartsTransferAndDebitsFuel(t *testing.T) {
	// Arrange
	f := newTransitFixture(t)
	f.seedRoute(t, "leo", "heo", 2000, 7200)
	f.seedShip(t, 20000)
	handler := commands.NewDispatchShipHandler(f.ships, f.matrix, f.clock)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.DispatchShipCommand{
		ShipID: "ship-1", ToLocationID: "heo",
	})

	// Assert
	require.NoError(t, err)
	dispatched := resp.(*commands.DispatchShipResponse)
	assert.Equal(t, "leo", dispatched.FromID)
	assert.Equal(t, []string{"leo", "heo"}, dispatched.Path)
	assert.Equal(t, dispatched.DepartedAt.Add(7200*time.Second), dispatched.ArrivesAt)

	// Fuel debit follows the rocket equation from the ship's dry mass.
	dry := 2200.0 + 900.0
	wantSpend := dry * (math.Exp(2000/(900*ship.G0)) - 1)
	assert.InDelta(t, wantSpend, dispatched.FuelSpentKg, 1e-6)

	reloaded, err := f.ships.FindByID(context.Background(), "ship-1")
	require.NoError(t, err)
	assert.True(t, reloaded.IsInTransit())
	assert.InDelta(t, 20000-wantSpend, reloaded.FuelKg(), 1e-6)
}

func TestDispatchShip_NoRoute(t *testing.T) {
	f := newTransitFixture(t)
	f.seedShip(t, 20000)
	handler := commands.NewDispatchShipHandler(f.ships, f.matrix, f.clock)

	_, err := handler.Handle(context.Background(), &commands.DispatchShipCommand{
		ShipID: "ship-1", ToLocationID: "heo",
	})

	var routeErr *shared.NoRouteError
	assert.ErrorAs(t, err, &routeErr)
}

func TestDispatchShip_InsufficientFuel(t *testing.T) {
	// Arrange - a route whose burn exceeds the tanked fuel
	f := newTransitFixture(t)
	f.seedRoute(t, "leo", "mars-orbit", 6000, 250*86400)
	f.seedShip(t, 500)
	handler := commands.NewDispatchShipHandler(f.ships, f.matrix, f.clock)

	// Act
	_, err := handler.Handle(context.Background(), &commands.DispatchShipCommand{
		ShipID: "ship-1", ToLocationID: "mars-orbit",
	})

	// Assert - ship untouched
	var fuelErr *shared.InsufficientFuelError
	require.ErrorAs(t, err, &fuelErr)

	reloaded, repoErr := f.ships.FindByID(context.Background(), "ship-1")
	require.NoError(t, repoErr)
	assert.True(t, reloaded.IsDocked())
	assert.InDelta(t, 500, reloaded.FuelKg(), 1e-9)
}

func TestDispatchShip_RejectsInTransitShip(t *testing.T) {
	f := newTransitFixture(t)
	f.seedRoute(t, "leo", "heo", 2000, 7200)
	f.seedShip(t, 20000)
	handler := commands.NewDispatchShipHandler(f.ships, f.matrix, f.clock)

	_, err := handler.Handle(context.Background(), &commands.DispatchShipCommand{ShipID: "ship-1", ToLocationID: "heo"})
	require.NoError(t, err)
	_, err = handler.Handle(context.Background(), &commands.DispatchShipCommand{ShipID: "ship-1", ToLocationID: "heo"})

	var notDocked *shared.NotDockedError
	assert.ErrorAs(t, err, &notDocked)
}

func TestSettleArrivals_DocksDueShipsOnce(t *testing.T) {
	// Arrange - dispatch, then advance game time past the arrival
	f := newTransitFixture(t)
	f.seedRoute(t, "leo", "heo", 2000, 7200)
	f.seedShip(t, 20000)
	ctx := context.Background()
	dispatch := commands.NewDispatchShipHandler(f.ships, f.matrix, f.clock)
	_, err := dispatch.Handle(ctx, &commands.DispatchShipCommand{ShipID: "ship-1", ToLocationID: "heo"})
	require.NoError(t, err)

	// 7200 game seconds at 48x is 150 wall seconds.
	f.wall.Advance(151 * time.Second)

	// Act
	settle := commands.NewSettleArrivalsHandler(f.ships, f.clock)
	resp, err := settle.Handle(ctx, &commands.SettleArrivalsCommand{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"ship-1"}, resp.(*commands.SettleArrivalsResponse).ArrivedShipIDs)

	reloaded, err := f.ships.FindByID(ctx, "ship-1")
	require.NoError(t, err)
	assert.True(t, reloaded.IsDocked())
	assert.Equal(t, "heo", reloaded.LocationID())

	// Act again - the sweep is idempotent
	resp, err = settle.Handle(ctx, &commands.SettleArrivalsCommand{})
	require.NoError(t, err)
	assert.Empty(t, resp.(*commands.SettleArrivalsResponse).ArrivedShipIDs)
}

func TestSettleArrivals_LeavesEarlyShipsInTransit(t *testing.T) {
	// Arrange
	f := newTransitFixture(t)
	f.seedRoute(t, "leo", "heo", 2000, 7200)
	f.seedShip(t, 20000)
	ctx := context.Background()
	_, err := commands.NewDispatchShipHandler(f.ships, f.matrix, f.clock).
		Handle(ctx, &commands.DispatchShipCommand{ShipID: "ship-1", ToLocationID: "heo"})
	require.NoError(t, err)

	// Half the transfer: 75 wall seconds.
	f.wall.Advance(75 * time.Second)

	// Act
	resp, err := commands.NewSettleArrivalsHandler(f.ships, f.clock).
		Handle(ctx, &commands.SettleArrivalsCommand{})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, resp.(*commands.SettleArrivalsResponse).ArrivedShipIDs)

	reloaded, err := f.ships.FindByID(ctx, "ship-1")
	require.NoError(t, err)
	assert.True(t, reloaded.IsInTransit())
	assert.InDelta(t, 0.5, reloaded.TransitProgress(f.clock.Now()), 0.01)
}
