package economy

import (
	"context"
	"fmt"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// Service owns the settle-on-access discipline: no caller reads or
// mutates an organization's balance or points without settling first.
type Service struct {
	repo  economy.Repository
	clock *shared.GameClock
}

// NewService creates the economy service.
func NewService(repo economy.Repository, clock *shared.GameClock) *Service {
	return &Service{repo: repo, clock: clock}
}

// SettleOrg loads an organization, folds in accruals up to the current
// game time and persists the new watermark. Returns the settled org and
// its active team count.
func (s *Service) SettleOrg(ctx context.Context, orgID string) (*economy.Organization, int, error) {
	org, err := s.repo.FindOrg(ctx, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, 0, shared.NewNotFoundError("organization", orgID)
	}

	teams, err := s.repo.CountActiveTeams(ctx, orgID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	org.Settle(s.clock.Now(), teams)
	if err := s.repo.SaveOrg(ctx, org); err != nil {
		return nil, 0, fmt.Errorf("failed to save organization: %w", err)
	}
	return org, teams, nil
}

// Repo exposes the underlying repository to handlers in this package.
func (s *Service) Repo() economy.Repository { return s.repo }

// Clock exposes the game clock to handlers in this package.
func (s *Service) Clock() *shared.GameClock { return s.clock }
