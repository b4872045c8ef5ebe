package setup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/setup"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/test/helpers"
)

func TestPersistClock_WritesAnchorTriple(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	meta := persistence.NewMetaRepository(db)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := shared.NewGameClock(wall, 48)
	clock.SetPaused(true)
	ctx := context.Background()

	// Act
	require.NoError(t, setup.PersistClock(ctx, meta, clock))

	// Assert
	realRaw, err := meta.Get(ctx, shared.MetaRealAnchorKey)
	require.NoError(t, err)
	assert.NotEmpty(t, realRaw)
	gameRaw, err := meta.Get(ctx, shared.MetaGameAnchorKey)
	require.NoError(t, err)
	assert.NotEmpty(t, gameRaw)
	pausedRaw, err := meta.Get(ctx, shared.MetaPausedKey)
	require.NoError(t, err)
	assert.Equal(t, "1", pausedRaw)
}

func TestLoadOrPersistClock_RestoresAcrossRestart(t *testing.T) {
	// Arrange - run a clock for two wall hours, pause, persist
	db := helpers.NewTestDB(t)
	meta := persistence.NewMetaRepository(db)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	first := shared.NewGameClock(wall, 48)
	wall.Advance(2 * time.Hour)
	first.SetPaused(true)
	ctx := context.Background()
	require.NoError(t, setup.PersistClock(ctx, meta, first))

	// Act - a second process restores from the same rows
	second := shared.NewGameClock(wall, 48)
	require.NoError(t, setup.LoadOrPersistClock(ctx, meta, second))

	// Assert - game time and pause state carry over
	assert.True(t, second.Paused())
	assert.Equal(t, first.Now(), second.Now())
}

func TestLoadOrPersistClock_FreshStoreSelfHeals(t *testing.T) {
	// Arrange - empty meta table
	db := helpers.NewTestDB(t)
	meta := persistence.NewMetaRepository(db)
	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := shared.NewGameClock(wall, 48)
	ctx := context.Background()

	// Act
	require.NoError(t, setup.LoadOrPersistClock(ctx, meta, clock))

	// Assert - the in-process state was written back
	realRaw, err := meta.Get(ctx, shared.MetaRealAnchorKey)
	require.NoError(t, err)
	assert.NotEmpty(t, realRaw)
	pausedRaw, err := meta.Get(ctx, shared.MetaPausedKey)
	require.NoError(t, err)
	assert.Equal(t, "0", pausedRaw)
}

func TestLoadOrPersistClock_MalformedRowsSelfHeal(t *testing.T) {
	// Arrange - a corrupted anchor row
	db := helpers.NewTestDB(t)
	meta := persistence.NewMetaRepository(db)
	ctx := context.Background()
	require.NoError(t, meta.Set(ctx, shared.MetaRealAnchorKey, "not-a-number"))
	require.NoError(t, meta.Set(ctx, shared.MetaGameAnchorKey, "123.5"))
	require.NoError(t, meta.Set(ctx, shared.MetaPausedKey, "maybe"))

	wall := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := shared.NewGameClock(wall, 48)
	before := clock.Now()

	// Act
	require.NoError(t, setup.LoadOrPersistClock(ctx, meta, clock))

	// Assert - the bad rows were overwritten and the clock kept its state
	assert.Equal(t, before, clock.Now())
	realRaw, err := meta.Get(ctx, shared.MetaRealAnchorKey)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-number", realRaw)
	pausedRaw, err := meta.Get(ctx, shared.MetaPausedKey)
	require.NoError(t, err)
	assert.Equal(t, "0", pausedRaw)
}
