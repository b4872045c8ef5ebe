package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/pkg/utils"
)

// Service implements the stack mutation laws shared by every feature
// that touches inventory: boosting, construction, prospecting rewards,
// ship assembly and deconstruction.
type Service struct {
	repo     inventory.Repository
	registry *catalog.Registry
	clock    *shared.GameClock
}

// NewService creates an inventory service.
func NewService(repo inventory.Repository, registry *catalog.Registry, clock *shared.GameClock) *Service {
	return &Service{repo: repo, registry: registry, clock: clock}
}

// Upsert applies a delta to a stack, creating, clamping or deleting the
// row as the laws require:
//   - absent stack with a non-positive delta: no-op
//   - absent stack with a positive delta: insert, negative dimensions
//     clamped to zero
//   - present stack: apply delta, clamp each dimension at zero
//   - empty after the delta: delete the row
func (s *Service) Upsert(ctx context.Context, locationID string, stackType inventory.StackType, stackKey, itemID, name string, dQuantity, dMassKg, dVolumeM3 float64, payload string) error {
	stack, err := s.repo.FindStack(ctx, locationID, stackType, stackKey)
	if err != nil {
		return fmt.Errorf("failed to load stack: %w", err)
	}

	if stack == nil {
		if dQuantity <= 0 && dMassKg <= 0 && dVolumeM3 <= 0 {
			return nil
		}
		stack = &inventory.Stack{
			LocationID: locationID,
			StackType:  stackType,
			StackKey:   stackKey,
			ItemID:     itemID,
			Name:       name,
			Payload:    payload,
		}
	}

	stack.ApplyDelta(dQuantity, dMassKg, dVolumeM3)
	if stack.IsEmpty() {
		return s.repo.Delete(ctx, locationID, stackType, stackKey)
	}

	stack.UpdatedAt = s.clock.Now()
	return s.repo.Save(ctx, stack)
}

// DepositResource adds resource mass at a location, deriving volume from
// the catalog density when one is known.
func (s *Service) DepositResource(ctx context.Context, locationID, resourceID string, massKg float64) error {
	if massKg <= 0 {
		return shared.NewValidationError("mass_kg", "must be positive")
	}

	name := resourceID
	if res, ok := s.registry.Resource(resourceID); ok {
		name = res.Name()
	}
	volume := 0.0
	if density := s.registry.ResourceDensity(resourceID); density > 0 {
		volume = massKg / density
	}
	return s.Upsert(ctx, locationID, inventory.StackTypeResource, resourceID, resourceID, name, massKg, massKg, volume, "")
}

// ConsumeResource debits up to the requested resource mass, removing
// volume proportionally, and returns the mass actually consumed (which
// is the full request, the available mass, or zero).
func (s *Service) ConsumeResource(ctx context.Context, locationID, resourceID string, massKg float64) (float64, error) {
	if massKg <= 0 {
		return 0, shared.NewValidationError("mass_kg", "must be positive")
	}

	stack, err := s.repo.FindStack(ctx, locationID, inventory.StackTypeResource, resourceID)
	if err != nil {
		return 0, fmt.Errorf("failed to load stack: %w", err)
	}
	if stack == nil {
		return 0, nil
	}

	consumed := utils.Min(massKg, stack.MassKg)
	if consumed <= 0 {
		return 0, nil
	}
	dVolume := 0.0
	if stack.MassKg > 0 {
		dVolume = stack.VolumeM3 * (consumed / stack.MassKg)
	}
	if err := s.Upsert(ctx, locationID, inventory.StackTypeResource, resourceID, stack.ItemID, stack.Name, -consumed, -consumed, -dVolume, stack.Payload); err != nil {
		return 0, err
	}
	return consumed, nil
}

// DepositPart adds whole part units to the content-addressed stack for
// the part's identity. The part must already be normalized.
func (s *Service) DepositPart(ctx context.Context, locationID string, part parts.Part, quantity int) error {
	if quantity <= 0 {
		return shared.NewValidationError("quantity", "must be positive")
	}

	key, err := inventory.PartStackKey(part)
	if err != nil {
		return fmt.Errorf("failed to derive stack key: %w", err)
	}

	identity := part.Clone()
	identity.ContainerUID = ""
	identity.Fill = nil
	payload, err := shared.CanonicalJSON(identity)
	if err != nil {
		return fmt.Errorf("failed to encode part payload: %w", err)
	}

	unitMass := part.MassKg + part.FillMassKg()
	unitVolume := part.CapacityM3
	q := float64(quantity)
	return s.Upsert(ctx, locationID, inventory.StackTypePart, key, part.ItemID, part.Name, q, q*unitMass, q*unitVolume, string(payload))
}

// ConsumePartUnit debits exactly one unit from a part stack identified by
// its stack key. A missing or drained stack is reported as a race: the
// caller validated availability before debiting.
func (s *Service) ConsumePartUnit(ctx context.Context, locationID, stackKey string) (*inventory.Stack, error) {
	stack, err := s.repo.FindStack(ctx, locationID, inventory.StackTypePart, stackKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load stack: %w", err)
	}
	if stack == nil || stack.Quantity < 1-inventory.Epsilon {
		return nil, shared.NewInventoryRaceError(stackKey)
	}

	before := *stack
	unitMass := stack.PerUnitMassKg(0)
	unitVolume := 0.0
	if stack.Quantity > 0 {
		unitVolume = stack.VolumeM3 / stack.Quantity
	}
	if err := s.Upsert(ctx, locationID, inventory.StackTypePart, stackKey, stack.ItemID, stack.Name, -1, -unitMass, -unitVolume, stack.Payload); err != nil {
		return nil, err
	}
	return &before, nil
}

// ConsumePartsByItemIDs debits the required count of each item id from
// the part stacks at a location, draining oldest stacks first.
//
// Availability is validated for every item before anything is debited,
// so a shortage reports the complete picture and leaves inventory
// untouched.
func (s *Service) ConsumePartsByItemIDs(ctx context.Context, locationID string, requirements map[string]int) ([]parts.Part, error) {
	type plan struct {
		itemID string
		stacks []inventory.Stack
	}

	// Item ids are walked in sorted order so shortage reports and the
	// consumed part order are stable across runs.
	itemIDs := make([]string, 0, len(requirements))
	for itemID := range requirements {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Strings(itemIDs)

	var shortages []shared.ItemShortage
	var plans []plan
	for _, itemID := range itemIDs {
		required := requirements[itemID]
		if required <= 0 {
			continue
		}
		stacks, err := s.repo.FindPartStacksByItemID(ctx, locationID, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stacks for %s: %w", itemID, err)
		}
		available := 0.0
		for _, st := range stacks {
			available += st.Quantity
		}
		if available+inventory.Epsilon < float64(required) {
			shortages = append(shortages, shared.ItemShortage{
				ItemID:    itemID,
				Required:  float64(required),
				Available: available,
			})
			continue
		}
		plans = append(plans, plan{itemID: itemID, stacks: stacks})
	}
	if len(shortages) > 0 {
		return nil, shared.NewInsufficientInventoryError(shortages)
	}

	var consumed []parts.Part
	for _, p := range plans {
		remaining := requirements[p.itemID]
		for _, st := range p.stacks {
			for remaining > 0 && st.Quantity >= 1-inventory.Epsilon {
				before, err := s.ConsumePartUnit(ctx, locationID, st.StackKey)
				if err != nil {
					return nil, err
				}
				part, err := decodeStackPart(*before)
				if err != nil {
					return nil, err
				}
				consumed = append(consumed, part)
				st.Quantity--
				remaining--
			}
			if remaining == 0 {
				break
			}
		}
		if remaining > 0 {
			return nil, shared.NewInventoryRaceError(p.itemID)
		}
	}
	return consumed, nil
}

// StacksAt returns every stack at a location.
func (s *Service) StacksAt(ctx context.Context, locationID string) ([]inventory.Stack, error) {
	return s.repo.FindByLocation(ctx, locationID)
}

func decodeStackPart(st inventory.Stack) (parts.Part, error) {
	if st.Payload == "" {
		return parts.Part{ItemID: st.ItemID, Name: st.Name, MassKg: st.PerUnitMassKg(0)}, nil
	}
	part, err := parts.FromJSON([]byte(st.Payload))
	if err != nil {
		return parts.Part{}, fmt.Errorf("failed to decode part payload for stack %s: %w", st.StackKey, err)
	}
	return part, nil
}
