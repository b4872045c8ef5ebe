package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	routingCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/routing/commands"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
	"github.com/RocketManDan1/Frontier-sub001/internal/infrastructure/config"
)

// BaselineShipID is the always-present shipyard vessel every fresh
// deployment starts with.
const BaselineShipID = "ship-shipyard-1"

const baselineShipName = "Shipyard One"

// baselineShipParts is the starter loadout, by catalog item id.
var baselineShipParts = []string{"ntr_solid_core", "water_tank_lg", "robonaut_scout"}

const baselineFuelKg = 20000.0

// Dependencies bundles everything the startup sequence touches.
type Dependencies struct {
	Locations location.Repository
	Ships     ship.Repository
	Meta      shared.MetaRepository
	Registry  *catalog.Registry
	Clock     *shared.GameClock
	Mediator  common.Mediator
	Config    *config.Config
}

// Run brings a store to a playable state. The sequence is idempotent:
// seed the Earth-Luna graph when the location table is empty, expand
// the Sol system, purge test ships, ensure the baseline shipyard ship,
// restore the sim clock, and regenerate the transfer matrix if the
// edge set changed.
func Run(ctx context.Context, deps Dependencies) error {
	count, err := deps.Locations.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}
	if count == 0 {
		if err := SeedEarthLuna(ctx, deps.Locations); err != nil {
			return fmt.Errorf("failed to seed baseline graph: %w", err)
		}
	}

	celestial, err := LoadCelestialConfig("")
	if err != nil {
		log.Printf("Using built-in celestial table: %v", err)
		celestial = DefaultCelestialConfig()
	}
	// Graph expansion failures leave a playable Earth-Luna system, so
	// log and continue rather than abort startup.
	if err := ExpandSolSystem(ctx, deps.Locations, celestial); err != nil {
		log.Printf("Sol-system expansion failed: %v", err)
	}

	if prefix := deps.Config.Game.TestShipPrefix; prefix != "" {
		purged, err := deps.Ships.DeleteByNamePrefix(ctx, prefix)
		if err != nil {
			return fmt.Errorf("failed to purge test ships: %w", err)
		}
		if purged > 0 {
			log.Printf("Purged %d test ships", purged)
		}
	}

	if err := ensureBaselineShip(ctx, deps); err != nil {
		return fmt.Errorf("failed to ensure baseline ship: %w", err)
	}

	if err := LoadOrPersistClock(ctx, deps.Meta, deps.Clock); err != nil {
		return fmt.Errorf("failed to restore sim clock: %w", err)
	}

	if _, err := deps.Mediator.Send(ctx, &routingCommands.RegenerateMatrixCommand{}); err != nil {
		return fmt.Errorf("failed to regenerate transfer matrix: %w", err)
	}

	return nil
}

// ensureBaselineShip creates the shipyard vessel unless it already
// exists, docked at the configured boost destination with the starter
// loadout.
func ensureBaselineShip(ctx context.Context, deps Dependencies) error {
	existing, err := deps.Ships.FindByID(ctx, BaselineShipID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	raw := make([]parts.Part, 0, len(baselineShipParts))
	for _, itemID := range baselineShipParts {
		entry, ok := deps.Registry.Lookup(itemID)
		if !ok {
			return fmt.Errorf("baseline part %s missing from catalog", itemID)
		}
		raw = append(raw, parts.FromRaw(entry.Record))
	}
	partList := parts.Normalize(raw, deps.Registry)
	ship.HardenContainers(partList, baselineFuelKg)

	s, err := ship.NewShip(BaselineShipID, baselineShipName, deps.Config.Game.LeoLocationID, partList, baselineFuelKg)
	if err != nil {
		return err
	}
	if err := deps.Ships.Save(ctx, s); err != nil {
		return err
	}
	log.Printf("Created baseline ship %s at %s", BaselineShipID, deps.Config.Game.LeoLocationID)
	return nil
}
