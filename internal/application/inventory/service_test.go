package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterCatalog "github.com/RocketManDan1/Frontier-sub001/internal/adapters/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	appInventory "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/test/helpers"
)

type serviceFixture struct {
	svc   *appInventory.Service
	repo  *persistence.InventoryRepositoryGORM
	reg   *catalog.Registry
	clock *shared.GameClock
	wall  *shared.MockClock
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	db := helpers.NewTestDB(t)
	repo := persistence.NewInventoryRepository(db)
	reg, err := catalog.NewRegistry(adapterCatalog.NewBuiltinSource())
	require.NoError(t, err)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := shared.NewGameClock(wall, 48)
	return &serviceFixture{
		svc:   appInventory.NewService(repo, reg, clock),
		repo:  repo,
		reg:   reg,
		clock: clock,
		wall:  wall,
	}
}

func normalizedPart(t *testing.T, f *serviceFixture, itemID string) parts.Part {
	t.Helper()
	return parts.Normalize([]parts.Part{{ItemID: itemID}}, f.reg)[0]
}

func TestDepositResource_DerivesVolumeFromDensity(t *testing.T) {
	// Arrange
	f := newServiceFixture(t)
	ctx := context.Background()

	// Act - water at 1000 kg/m3
	require.NoError(t, f.svc.DepositResource(ctx, "leo", "water", 2500))

	// Assert
	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	require.NotNil(t, stack)
	assert.Equal(t, "Water", stack.Name)
	assert.InDelta(t, 2500, stack.MassKg, 1e-9)
	assert.InDelta(t, 2.5, stack.VolumeM3, 1e-9)
}

func TestDepositResource_AccumulatesOntoSameStack(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.DepositResource(ctx, "leo", "water", 1000))
	require.NoError(t, f.svc.DepositResource(ctx, "leo", "water", 500))

	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	assert.InDelta(t, 1500, stack.MassKg, 1e-9)
}

func TestConsumeResource_DebitsAtMostAvailable(t *testing.T) {
	// Arrange
	f := newServiceFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.DepositResource(ctx, "leo", "water", 1000))

	// Act - ask for more than the stack holds
	consumed, err := f.svc.ConsumeResource(ctx, "leo", "water", 4000)

	// Assert - partial debit, no error, stack row deleted
	require.NoError(t, err)
	assert.InDelta(t, 1000, consumed, 1e-9)
	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	assert.Nil(t, stack)
}

func TestConsumeResource_AbsentStackConsumesZero(t *testing.T) {
	f := newServiceFixture(t)

	consumed, err := f.svc.ConsumeResource(context.Background(), "leo", "iron", 100)

	require.NoError(t, err)
	assert.Equal(t, 0.0, consumed)
}

func TestConsumeResource_RemovesVolumeProportionally(t *testing.T) {
	// Arrange
	f := newServiceFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.DepositResource(ctx, "leo", "water", 2000))

	// Act - consume half the mass
	consumed, err := f.svc.ConsumeResource(ctx, "leo", "water", 1000)

	// Assert - half the volume went with it
	require.NoError(t, err)
	assert.InDelta(t, 1000, consumed, 1e-9)
	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	assert.InDelta(t, 1, stack.VolumeM3, 1e-9)
}

func TestUpsert_AbsentStackNegativeDeltaIsNoOp(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	err := f.svc.Upsert(ctx, "leo", inventory.StackTypeResource, "water", "water", "Water", -10, -10, -0.01, "")

	require.NoError(t, err)
	stack, err := f.repo.FindStack(ctx, "leo", inventory.StackTypeResource, "water")
	require.NoError(t, err)
	assert.Nil(t, stack)
}

func TestDepositPart_FungibleAcrossInstances(t *testing.T) {
	// Arrange - two tanks with distinct container UIDs
	f := newServiceFixture(t)
	ctx := context.Background()
	first := normalizedPart(t, f, "water_tank_sm")
	second := normalizedPart(t, f, "water_tank_sm")
	require.NotEqual(t, first.ContainerUID, second.ContainerUID)

	// Act
	require.NoError(t, f.svc.DepositPart(ctx, "leo", first, 1))
	require.NoError(t, f.svc.DepositPart(ctx, "leo", second, 1))

	// Assert - one stack of two units
	stacks, err := f.svc.StacksAt(ctx, "leo")
	require.NoError(t, err)
	require.Len(t, stacks, 1)
	assert.Equal(t, 2.0, stacks[0].Quantity)
	assert.InDelta(t, 300, stacks[0].MassKg, 1e-9)
}

func TestDepositPart_FilledTankCarriesCargoMass(t *testing.T) {
	// Arrange - a tank holding 4000 kg of water
	f := newServiceFixture(t)
	ctx := context.Background()
	tank := normalizedPart(t, f, "water_tank_sm")
	tank.Fill = &parts.ContainerFill{UsedM3: 4, CargoMassKg: 4000, ResourceID: "water"}

	// Act
	require.NoError(t, f.svc.DepositPart(ctx, "leo", tank, 1))

	// Assert - unit mass includes the fill, identity does not
	stacks, err := f.svc.StacksAt(ctx, "leo")
	require.NoError(t, err)
	require.Len(t, stacks, 1)
	assert.InDelta(t, 4150, stacks[0].MassKg, 1e-9)
	assert.NotContains(t, stacks[0].Payload, "container_uid")
	assert.NotContains(t, stacks[0].Payload, "fill")
}

func TestConsumePartUnit_ReturnsPreDebitStack(t *testing.T) {
	// Arrange
	f := newServiceFixture(t)
	ctx := context.Background()
	tank := normalizedPart(t, f, "water_tank_sm")
	require.NoError(t, f.svc.DepositPart(ctx, "leo", tank, 3))
	key, err := inventory.PartStackKey(tank)
	require.NoError(t, err)

	// Act
	before, err := f.svc.ConsumePartUnit(ctx, "leo", key)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3.0, before.Quantity)
	after, err := f.repo.FindStack(ctx, "leo", inventory.StackTypePart, key)
	require.NoError(t, err)
	assert.Equal(t, 2.0, after.Quantity)
	assert.InDelta(t, 300, after.MassKg, 1e-9)
}

func TestConsumePartUnit_MissingStackIsRace(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.ConsumePartUnit(context.Background(), "leo", "no-such-key")

	var raceErr *shared.InventoryRaceError
	assert.ErrorAs(t, err, &raceErr)
}

func TestConsumePartsByItemIDs_ValidatesBeforeDebiting(t *testing.T) {
	// Arrange - enough tanks, not enough thrusters
	f := newServiceFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.DepositPart(ctx, "leo", normalizedPart(t, f, "water_tank_sm"), 2))
	require.NoError(t, f.svc.DepositPart(ctx, "leo", normalizedPart(t, f, "ntr_solid_core"), 1))

	// Act
	_, err := f.svc.ConsumePartsByItemIDs(ctx, "leo", map[string]int{
		"water_tank_sm":  1,
		"ntr_solid_core": 3,
	})

	// Assert - full shortage report, nothing consumed
	var invErr *shared.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	require.Len(t, invErr.Shortages, 1)
	assert.Equal(t, "ntr_solid_core", invErr.Shortages[0].ItemID)
	assert.Equal(t, 3.0, invErr.Shortages[0].Required)
	assert.Equal(t, 1.0, invErr.Shortages[0].Available)

	stacks, err := f.svc.StacksAt(ctx, "leo")
	require.NoError(t, err)
	total := 0.0
	for _, st := range stacks {
		total += st.Quantity
	}
	assert.Equal(t, 3.0, total)
}

func TestConsumePartsByItemIDs_ShortagesSortedByItemID(t *testing.T) {
	// Arrange - nothing in stock, three items required
	f := newServiceFixture(t)

	// Act
	_, err := f.svc.ConsumePartsByItemIDs(context.Background(), "leo", map[string]int{
		"water_tank_sm":  1,
		"ntr_solid_core": 2,
		"robonaut_scout": 1,
	})

	// Assert - the report lists shortages in item-id order
	var invErr *shared.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	require.Len(t, invErr.Shortages, 3)
	assert.Equal(t, "ntr_solid_core", invErr.Shortages[0].ItemID)
	assert.Equal(t, "robonaut_scout", invErr.Shortages[1].ItemID)
	assert.Equal(t, "water_tank_sm", invErr.Shortages[2].ItemID)
}

func TestConsumePartsByItemIDs_DrainsOldestStackFirst(t *testing.T) {
	// Arrange - two distinct tank variants of the same item id, deposited
	// at different game times
	f := newServiceFixture(t)
	ctx := context.Background()

	older := normalizedPart(t, f, "water_tank_sm")
	older.Extras = map[string]any{"batch": "alpha"}
	require.NoError(t, f.svc.DepositPart(ctx, "leo", older, 1))

	f.wall.Advance(time.Hour)
	newer := normalizedPart(t, f, "water_tank_sm")
	newer.Extras = map[string]any{"batch": "beta"}
	require.NoError(t, f.svc.DepositPart(ctx, "leo", newer, 1))

	// Act
	consumed, err := f.svc.ConsumePartsByItemIDs(ctx, "leo", map[string]int{"water_tank_sm": 1})

	// Assert - the older stack drained first
	require.NoError(t, err)
	require.Len(t, consumed, 1)
	assert.Equal(t, "alpha", consumed[0].Extras["batch"])
}
