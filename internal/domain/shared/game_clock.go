package shared

import (
	"sync"
	"time"
)

// DefaultGameTimeScale converts elapsed real seconds to game seconds.
// At 48x one real hour is two game days.
const DefaultGameTimeScale = 48.0

// GameEpoch is the game-time origin installed by Reset.
var GameEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// GameClock models scaled virtual time with a single source of truth.
//
// Invariants:
// - Now() is continuous across SetPaused edges (both transitions rebase the anchors)
// - While paused, Now() is frozen at the game anchor
// - All accessors hold the mutex for their full duration and perform no I/O
type GameClock struct {
	mu          sync.Mutex
	wall        Clock
	scale       float64
	realAnchorS float64
	gameAnchorS float64
	paused      bool
}

// GameClockState is the serializable triple behind a GameClock.
type GameClockState struct {
	RealAnchorS float64
	GameAnchorS float64
	Paused      bool
}

// NewGameClock creates a running clock anchored at GameEpoch.
// A non-positive scale falls back to DefaultGameTimeScale.
func NewGameClock(wall Clock, scale float64) *GameClock {
	if scale <= 0 {
		scale = DefaultGameTimeScale
	}
	c := &GameClock{wall: wall, scale: scale}
	c.Reset()
	return c
}

// unixSeconds converts a time to fractional unix seconds.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// nowLocked computes current game seconds; callers must hold the mutex.
func (c *GameClock) nowLocked() float64 {
	if c.paused {
		return c.gameAnchorS
	}
	elapsed := unixSeconds(c.wall.Now()) - c.realAnchorS
	return c.gameAnchorS + elapsed*c.scale
}

// Now returns the current game time.
func (c *GameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.nowLocked()
	return time.Unix(0, int64(s*float64(time.Second))).UTC()
}

// NowUnix returns the current game time as fractional unix seconds.
func (c *GameClock) NowUnix() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowLocked()
}

// SetPaused pauses or resumes the clock. Rebasing the anchors on every
// transition keeps Now() continuous across pause edges.
func (c *GameClock) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameAnchorS = c.nowLocked()
	c.realAnchorS = unixSeconds(c.wall.Now())
	c.paused = paused
}

// Paused reports whether the clock is paused.
func (c *GameClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Scale returns the real-to-game time multiplier.
func (c *GameClock) Scale() float64 {
	return c.scale
}

// Reset rewinds game time to GameEpoch and resumes the clock.
func (c *GameClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameAnchorS = unixSeconds(GameEpoch)
	c.realAnchorS = unixSeconds(c.wall.Now())
	c.paused = false
}

// Export returns the serializable anchor triple.
func (c *GameClock) Export() GameClockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GameClockState{
		RealAnchorS: c.realAnchorS,
		GameAnchorS: c.gameAnchorS,
		Paused:      c.paused,
	}
}

// Import restores a previously exported anchor triple.
func (c *GameClock) Import(state GameClockState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.realAnchorS = state.RealAnchorS
	c.gameAnchorS = state.GameAnchorS
	c.paused = state.Paused
}
