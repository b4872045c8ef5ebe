package ship_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

func thrusterPart() parts.Part {
	return parts.Part{
		ItemID:     "ntr_solid_core",
		CategoryID: catalog.CategoryThruster,
		MassKg:     1000,
		ThrustKn:   67,
		IspS:       900,
	}
}

func waterTankPart() parts.Part {
	return parts.Part{
		ItemID:      "water_tank_sm",
		CategoryID:  catalog.CategoryStorage,
		MassKg:      500,
		CapacityM3:  10,
		MassPerM3Kg: 1000,
		ResourceID:  "water",
	}
}

func TestComputeStats_RocketEquation(t *testing.T) {
	// Arrange
	partList := []parts.Part{thrusterPart(), waterTankPart()}

	// Act
	stats := ship.ComputeStats(partList, 5000)

	// Assert
	assert.Equal(t, 1500.0, stats.DryMassKg)
	assert.Equal(t, 10000.0, stats.FuelCapacityKg)
	assert.Equal(t, 5000.0, stats.FuelKg)
	assert.Equal(t, 6500.0, stats.WetMassKg)
	assert.Equal(t, 900.0, stats.IspS)
	assert.Equal(t, 67.0, stats.ThrustKn)

	wantDv := 900 * ship.G0 * math.Log(6500.0/1500.0)
	assert.InDelta(t, wantDv, stats.DeltaVRemainingMS, 1e-9)
	assert.InDelta(t, 12941.9, stats.DeltaVRemainingMS, 0.5)

	wantAccel := 67 * 1000 / (6500 * ship.G0)
	assert.InDelta(t, wantAccel, stats.AccelerationGs, 1e-9)
}

func TestComputeStats_FuelClampedToCapacity(t *testing.T) {
	stats := ship.ComputeStats([]parts.Part{waterTankPart()}, 99999)

	assert.Equal(t, 10000.0, stats.FuelKg)
	assert.Equal(t, 10500.0, stats.WetMassKg)
}

func TestComputeStats_DominantThrusterSetsIsp(t *testing.T) {
	// Arrange - a weak high-isp thruster next to a strong low-isp one
	weak := parts.Part{ItemID: "h2o_arcjet", CategoryID: catalog.CategoryThruster, MassKg: 100, ThrustKn: 2, IspS: 430}
	strong := thrusterPart()

	// Act
	stats := ship.ComputeStats([]parts.Part{weak, strong}, 0)

	// Assert - thrust sums, isp follows the dominant thruster
	assert.Equal(t, 69.0, stats.ThrustKn)
	assert.Equal(t, 900.0, stats.IspS)
}

func TestComputeStats_NoFuelNoDeltaV(t *testing.T) {
	stats := ship.ComputeStats([]parts.Part{thrusterPart(), waterTankPart()}, 0)

	assert.Equal(t, 0.0, stats.DeltaVRemainingMS)
}

func TestFuelToSpendForDeltaV(t *testing.T) {
	// Arrange
	stats := ship.ComputeStats([]parts.Part{thrusterPart(), waterTankPart()}, 5000)

	// Act
	spend, err := stats.FuelToSpendForDeltaV(3000)

	// Assert
	require.NoError(t, err)
	want := 1500 * (math.Exp(3000/(900*ship.G0)) - 1)
	assert.InDelta(t, want, spend, 1e-9)
	assert.InDelta(t, 607.2, spend, 0.5)
}

func TestFuelToSpendForDeltaV_NoThruster(t *testing.T) {
	stats := ship.ComputeStats([]parts.Part{waterTankPart()}, 5000)

	_, err := stats.FuelToSpendForDeltaV(3000)

	var ispErr *shared.InsufficientIspError
	assert.ErrorAs(t, err, &ispErr)
}

func TestFuelNeededForDeltaV_ClampsWhenAlreadyFueled(t *testing.T) {
	stats := ship.ComputeStats([]parts.Part{thrusterPart(), waterTankPart()}, 5000)

	needed, err := stats.FuelNeededForDeltaV(3000)

	require.NoError(t, err)
	assert.Equal(t, 0.0, needed)
}

func TestHardenContainers_DistributesFuelProportionally(t *testing.T) {
	// Arrange - two bare tanks, 10 m3 and 30 m3
	small := waterTankPart()
	large := waterTankPart()
	large.ItemID = "water_tank_lg"
	large.CapacityM3 = 30
	partList := []parts.Part{thrusterPart(), small, large}

	// Act
	changed := ship.HardenContainers(partList, 8000)

	// Assert - fill splits 1:3 by capacity
	assert.True(t, changed)
	require.NotNil(t, partList[1].Fill)
	require.NotNil(t, partList[2].Fill)
	assert.InDelta(t, 2000, partList[1].Fill.CargoMassKg, 1e-9)
	assert.InDelta(t, 6000, partList[2].Fill.CargoMassKg, 1e-9)
	assert.InDelta(t, 2, partList[1].Fill.UsedM3, 1e-9)
	assert.InDelta(t, 6, partList[2].Fill.UsedM3, 1e-9)
	assert.Equal(t, "water", partList[1].Fill.ResourceID)
}

func TestHardenContainers_SecondPassIsNoOp(t *testing.T) {
	// Arrange
	partList := []parts.Part{waterTankPart()}
	require.True(t, ship.HardenContainers(partList, 4000))
	firstFill := *partList[0].Fill

	// Act
	changed := ship.HardenContainers(partList, 9000)

	// Assert - explicit fill is never rewritten
	assert.False(t, changed)
	assert.Equal(t, firstFill, *partList[0].Fill)
}

func TestHardenContainers_IgnoresNonFuelStorage(t *testing.T) {
	hold := parts.Part{
		ItemID:      "cargo_hold",
		CategoryID:  catalog.CategoryStorage,
		MassKg:      800,
		CapacityM3:  50,
		MassPerM3Kg: 0,
	}
	partList := []parts.Part{hold}

	assert.False(t, ship.HardenContainers(partList, 4000))
	assert.Nil(t, partList[0].Fill)
}
