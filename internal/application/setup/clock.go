package setup

import (
	"context"
	"log"
	"strconv"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// LoadOrPersistClock restores the game clock from the meta rows. When
// any of the three rows is missing or malformed the in-process state
// wins and is written back, so a fresh or corrupted store self-heals.
func LoadOrPersistClock(ctx context.Context, meta shared.MetaRepository, clock *shared.GameClock) error {
	realRaw, err := meta.Get(ctx, shared.MetaRealAnchorKey)
	if err != nil {
		return err
	}
	gameRaw, err := meta.Get(ctx, shared.MetaGameAnchorKey)
	if err != nil {
		return err
	}
	pausedRaw, err := meta.Get(ctx, shared.MetaPausedKey)
	if err != nil {
		return err
	}

	realAnchor, errReal := strconv.ParseFloat(realRaw, 64)
	gameAnchor, errGame := strconv.ParseFloat(gameRaw, 64)
	if realRaw == "" || gameRaw == "" || errReal != nil || errGame != nil ||
		(pausedRaw != "0" && pausedRaw != "1") {
		log.Printf("Sim clock state missing or malformed, persisting current state")
		return PersistClock(ctx, meta, clock)
	}

	clock.Import(shared.GameClockState{
		RealAnchorS: realAnchor,
		GameAnchorS: gameAnchor,
		Paused:      pausedRaw == "1",
	})
	return nil
}

// PersistClock writes the clock's anchor triple to the meta rows.
func PersistClock(ctx context.Context, meta shared.MetaRepository, clock *shared.GameClock) error {
	state := clock.Export()
	if err := meta.Set(ctx, shared.MetaRealAnchorKey, strconv.FormatFloat(state.RealAnchorS, 'g', -1, 64)); err != nil {
		return err
	}
	if err := meta.Set(ctx, shared.MetaGameAnchorKey, strconv.FormatFloat(state.GameAnchorS, 'g', -1, 64)); err != nil {
		return err
	}
	paused := "0"
	if state.Paused {
		paused = "1"
	}
	return meta.Set(ctx, shared.MetaPausedKey, paused)
}
