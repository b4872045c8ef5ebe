package economy

import "context"

// Repository persists organizations and their economic records.
type Repository interface {
	FindOrg(ctx context.Context, id string) (*Organization, error)
	FindAllOrgs(ctx context.Context) ([]*Organization, error)
	SaveOrg(ctx context.Context, org *Organization) error

	FindTeam(ctx context.Context, teamID string) (*ResearchTeam, error)
	FindActiveTeams(ctx context.Context, orgID string) ([]ResearchTeam, error)
	CountActiveTeams(ctx context.Context, orgID string) (int, error)
	SaveTeam(ctx context.Context, team ResearchTeam) error
	DeleteTeam(ctx context.Context, teamID string) error

	FindUnlocks(ctx context.Context, orgID string) ([]ResearchUnlock, error)
	HasUnlock(ctx context.Context, orgID, techID string) (bool, error)
	SaveUnlock(ctx context.Context, unlock ResearchUnlock) error

	FindMemberOrg(ctx context.Context, username string) (string, error)
	SaveMember(ctx context.Context, member OrgMember) error

	SaveBoost(ctx context.Context, boost LeoBoost) error
}
