package boost

import (
	"context"
	"fmt"
	"sort"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// BoostableItem is one catalog entry an organization may launch.
type BoostableItem struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	MassPerUnitKg float64 `json:"mass_per_unit_kg"`
	TechLevel     float64 `json:"tech_level"`
}

// partKinds are the catalog kinds whose records are launchable hardware.
var partKinds = []catalog.Kind{
	catalog.KindThruster,
	catalog.KindReactor,
	catalog.KindGenerator,
	catalog.KindRadiator,
	catalog.KindRefinery,
	catalog.KindRobonaut,
	catalog.KindConstructor,
	catalog.KindStorage,
}

// Service computes per-organization boost eligibility.
type Service struct {
	registry *catalog.Registry
	repo     economy.Repository
}

func NewService(registry *catalog.Registry, repo economy.Repository) *Service {
	return &Service{registry: registry, repo: repo}
}

// techLevelEligible reports membership of the item's tech level in the
// boostable set. The set holds integers only, so fractional levels are
// never eligible.
func techLevelEligible(level float64) bool {
	i := int(level)
	if float64(i) != level {
		return false
	}
	return economy.BoostableTechLevels[i]
}

// BoostableItems enumerates the catalog items the organization may
// boost: tech level in the boostable set and the item's tech-tree node
// unlocked. The fuel resource is always boostable.
func (s *Service) BoostableItems(ctx context.Context, orgID string) ([]BoostableItem, error) {
	unlocks, err := s.repo.FindUnlocks(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocks: %w", err)
	}
	unlocked := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		unlocked[u.TechID] = true
	}

	var items []BoostableItem
	for _, kind := range partKinds {
		category := catalog.KindCategory(kind)
		for itemID, rec := range s.registry.Kind(kind) {
			level := rec.Float("tech_level")
			if !techLevelEligible(level) {
				continue
			}
			if !unlocked[catalog.TechNodeForItem(itemID, category)] {
				continue
			}
			items = append(items, BoostableItem{
				ItemID:        itemID,
				Name:          rec.Name(),
				Type:          rec.Str("type"),
				MassPerUnitKg: rec.Float("mass_kg"),
				TechLevel:     level,
			})
		}
	}

	if rec, ok := s.registry.Resource(ship.FuelResourceID); ok {
		items = append(items, BoostableItem{
			ItemID:        ship.FuelResourceID,
			Name:          rec.Name(),
			Type:          "resource",
			MassPerUnitKg: 1,
			TechLevel:     rec.Float("tech_level"),
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

// Find returns the boostable entry for one item id, or false.
func (s *Service) Find(ctx context.Context, orgID, itemID string) (BoostableItem, bool, error) {
	items, err := s.BoostableItems(ctx, orgID)
	if err != nil {
		return BoostableItem{}, false, err
	}
	for _, item := range items {
		if item.ItemID == itemID {
			return item, true, nil
		}
	}
	return BoostableItem{}, false, nil
}
