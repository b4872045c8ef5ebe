package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
)

// Orbit radii around Earth, km.
const (
	leoRadiusKm  = 6771
	heoRadiusKm  = 26578
	geoRadiusKm  = 42164
	lunaOrbitKm  = 384400
	lloRadiusKm  = 1837
	eml1RadiusKm = 326000
)

// seedLocation is one row of the baseline graph.
type seedLocation struct {
	id, name, parentID string
	isGroup            bool
	sortOrder          int
	x, y               float64
}

var earthLunaLocations = []seedLocation{
	{id: "earth", name: "Earth System", isGroup: true, sortOrder: 10, x: 149.598e6},
	{id: "leo", name: "Low Earth Orbit", parentID: "earth", sortOrder: 11, x: 149.598e6},
	{id: "heo", name: "High Earth Orbit", parentID: "earth", sortOrder: 12, x: 149.598e6},
	{id: "geo", name: "Geostationary Orbit", parentID: "earth", sortOrder: 13, x: 149.598e6},
	{id: "eml1", name: "Earth-Luna L1", parentID: "earth", sortOrder: 14, x: 149.598e6},
	{id: "eml2", name: "Earth-Luna L2", parentID: "earth", sortOrder: 15, x: 149.598e6},
	{id: "luna", name: "Luna", parentID: "earth", isGroup: true, sortOrder: 20, x: 149.598e6},
	{id: "llo", name: "Low Lunar Orbit", parentID: "luna", sortOrder: 21, x: 149.598e6},
	{id: "luna-surface", name: "Luna Surface", parentID: "luna", sortOrder: 22, x: 149.598e6},
}


// SeedEarthLuna installs the baseline Earth-Luna graph: orbits, Lagrange
// points, the lunar surface site and the transfer edges between them.
// Every write is a keyed upsert, so re-seeding is idempotent.
func SeedEarthLuna(ctx context.Context, repo location.Repository) error {
	for _, row := range earthLunaLocations {
		loc := &location.Location{
			ID:        row.id,
			Name:      row.name,
			ParentID:  row.parentID,
			IsGroup:   row.isGroup,
			SortOrder: row.sortOrder,
			X:         row.x,
			Y:         row.y,
		}
		if err := repo.Save(ctx, loc); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", row.id, err)
		}
	}

	edges := []location.TransferEdge{}
	addBidirectional := func(fromID, toID string, r location.HohmannResult) {
		edges = append(edges,
			location.TransferEdge{FromID: fromID, ToID: toID, DvMS: r.DvMS, TofS: r.TofS},
			location.TransferEdge{FromID: toID, ToID: fromID, DvMS: r.DvMS, TofS: r.TofS},
		)
	}

	addBidirectional("leo", "heo", location.OrbitChange(location.MuEarth, leoRadiusKm, heoRadiusKm))
	addBidirectional("heo", "geo", location.OrbitChange(location.MuEarth, heoRadiusKm, geoRadiusKm))
	addBidirectional("leo", "geo", location.OrbitChange(location.MuEarth, leoRadiusKm, geoRadiusKm))

	// Hand-picked: three-body Lagrange transfers and powered descent,
	// which the two-burn Hohmann helpers cannot express.
	addBidirectional("geo", "eml1", location.HohmannResult{DvMS: 1300, TofS: 4 * 86400})
	addBidirectional("eml1", "eml2", location.HohmannResult{DvMS: 350, TofS: 6 * 86400})
	addBidirectional("eml1", "llo", location.HohmannResult{DvMS: 750, TofS: 3 * 86400})
	addBidirectional("llo", "luna-surface", location.HohmannResult{DvMS: 1870, TofS: 3600})

	for _, e := range edges {
		if err := repo.SaveEdge(ctx, e); err != nil {
			return fmt.Errorf("failed to seed edge %s->%s: %w", e.FromID, e.ToID, err)
		}
	}

	site := location.SurfaceSite{
		LocationID:  "luna-surface",
		BodyID:      "luna",
		OrbitNodeID: "llo",
		GravityMS2:  1.62,
	}
	if err := repo.SaveSurfaceSite(ctx, site); err != nil {
		return fmt.Errorf("failed to seed lunar site: %w", err)
	}
	for resourceID, fraction := range map[string]float64{
		"water": 0.05, "regolith": 0.70, "silicates": 0.20,
	} {
		res := location.SurfaceSiteResource{
			SiteLocationID: "luna-surface",
			ResourceID:     resourceID,
			MassFraction:   fraction,
		}
		if err := repo.SaveSiteResource(ctx, res); err != nil {
			return fmt.Errorf("failed to seed lunar resource %s: %w", resourceID, err)
		}
	}

	log.Printf("Seeded Earth-Luna graph: %d locations, %d edges", len(earthLunaLocations), len(edges))
	return nil
}

// ExpandSolSystem extends the graph with the configured planets: a group
// and parking-orbit node per body, bidirectional interplanetary edges
// between every pair of parking orbits, Mars moons and surface, and the
// hand-picked hyperbolic edges toward the Sun.
func ExpandSolSystem(ctx context.Context, repo location.Repository, cfg *CelestialConfig) error {
	sortOrder := 30
	for _, body := range cfg.Bodies {
		if body.ID == "earth" {
			continue // already seeded
		}
		group := &location.Location{
			ID: body.ID, Name: body.Name, IsGroup: true,
			SortOrder: sortOrder, X: body.HeliocentricRKm,
		}
		if err := repo.Save(ctx, group); err != nil {
			return fmt.Errorf("failed to save body %s: %w", body.ID, err)
		}
		orbit := &location.Location{
			ID: body.OrbitNodeID, Name: body.OrbitNodeName, ParentID: body.ID,
			SortOrder: sortOrder + 1, X: body.HeliocentricRKm,
		}
		if err := repo.Save(ctx, orbit); err != nil {
			return fmt.Errorf("failed to save orbit %s: %w", body.OrbitNodeID, err)
		}
		sortOrder += 10
	}

	for i := range cfg.Bodies {
		for j := i + 1; j < len(cfg.Bodies); j++ {
			a, b := cfg.Bodies[i], cfg.Bodies[j]
			transfer := location.InterplanetaryTransfer(
				a.HeliocentricRKm, b.HeliocentricRKm,
				a.Mu, a.ParkingRKm,
				b.Mu, b.ParkingRKm,
			)
			forward := location.TransferEdge{FromID: a.OrbitNodeID, ToID: b.OrbitNodeID, DvMS: transfer.DvMS, TofS: transfer.TofS}
			backward := location.TransferEdge{FromID: b.OrbitNodeID, ToID: a.OrbitNodeID, DvMS: transfer.DvMS, TofS: transfer.TofS}
			if err := repo.SaveEdge(ctx, forward); err != nil {
				return fmt.Errorf("failed to save edge %s->%s: %w", forward.FromID, forward.ToID, err)
			}
			if err := repo.SaveEdge(ctx, backward); err != nil {
				return fmt.Errorf("failed to save edge %s->%s: %w", backward.FromID, backward.ToID, err)
			}
		}
	}

	if err := expandMars(ctx, repo); err != nil {
		return err
	}
	return expandSun(ctx, repo, cfg)
}

func expandMars(ctx context.Context, repo location.Repository) error {
	moons := []seedLocation{
		{id: "phobos", name: "Phobos", parentID: "mars", sortOrder: 61, x: 227.956e6},
		{id: "deimos", name: "Deimos", parentID: "mars", sortOrder: 62, x: 227.956e6},
		{id: "mars-surface", name: "Mars Surface", parentID: "mars", sortOrder: 63, x: 227.956e6},
	}
	for _, row := range moons {
		loc := &location.Location{
			ID: row.id, Name: row.name, ParentID: row.parentID,
			SortOrder: row.sortOrder, X: row.x,
		}
		if err := repo.Save(ctx, loc); err != nil {
			return fmt.Errorf("failed to save %s: %w", row.id, err)
		}
	}

	const (
		marsOrbitKm   = 3690
		phobosOrbitKm = 9376
		deimosOrbitKm = 23463
	)
	edges := []struct {
		from, to string
		r        location.HohmannResult
	}{
		{"mars-orbit", "phobos", location.OrbitChange(location.MuMars, marsOrbitKm, phobosOrbitKm)},
		{"phobos", "deimos", location.OrbitChange(location.MuMars, phobosOrbitKm, deimosOrbitKm)},
		{"mars-orbit", "deimos", location.OrbitChange(location.MuMars, marsOrbitKm, deimosOrbitKm)},
		{"mars-orbit", "mars-surface", location.HohmannResult{DvMS: 4100, TofS: 1800}},
	}
	for _, e := range edges {
		forward := location.TransferEdge{FromID: e.from, ToID: e.to, DvMS: e.r.DvMS, TofS: e.r.TofS}
		backward := location.TransferEdge{FromID: e.to, ToID: e.from, DvMS: e.r.DvMS, TofS: e.r.TofS}
		if err := repo.SaveEdge(ctx, forward); err != nil {
			return fmt.Errorf("failed to save edge %s->%s: %w", e.from, e.to, err)
		}
		if err := repo.SaveEdge(ctx, backward); err != nil {
			return fmt.Errorf("failed to save edge %s->%s: %w", e.to, e.from, err)
		}
	}

	site := location.SurfaceSite{
		LocationID:  "mars-surface",
		BodyID:      "mars",
		OrbitNodeID: "mars-orbit",
		GravityMS2:  3.71,
	}
	if err := repo.SaveSurfaceSite(ctx, site); err != nil {
		return fmt.Errorf("failed to seed martian site: %w", err)
	}
	for resourceID, fraction := range map[string]float64{
		"water": 0.10, "regolith": 0.60, "iron": 0.15,
	} {
		res := location.SurfaceSiteResource{
			SiteLocationID: "mars-surface",
			ResourceID:     resourceID,
			MassFraction:   fraction,
		}
		if err := repo.SaveSiteResource(ctx, res); err != nil {
			return fmt.Errorf("failed to seed martian resource %s: %w", resourceID, err)
		}
	}
	return nil
}

// expandSun adds the Sun group, a close solar orbit, and hand-picked
// hyperbolic drop edges from each parking orbit. Falling toward the Sun
// is cheap on paper and brutal on delta-v to stop, hence the asymmetry.
func expandSun(ctx context.Context, repo location.Repository, cfg *CelestialConfig) error {
	sun := &location.Location{ID: "sun", Name: "Sun", IsGroup: true, SortOrder: 90}
	if err := repo.Save(ctx, sun); err != nil {
		return fmt.Errorf("failed to save sun: %w", err)
	}
	orbit := &location.Location{ID: "sun-close", Name: "Close Solar Orbit", ParentID: "sun", SortOrder: 91, X: 10e6}
	if err := repo.Save(ctx, orbit); err != nil {
		return fmt.Errorf("failed to save solar orbit: %w", err)
	}

	toSun := map[string]location.HohmannResult{
		"mercury-orbit": {DvMS: 12800, TofS: 30 * 86400},
		"venus-orbit":   {DvMS: 17300, TofS: 45 * 86400},
		"leo":           {DvMS: 21300, TofS: 65 * 86400},
		"mars-orbit":    {DvMS: 24600, TofS: 95 * 86400},
	}
	for fromID, r := range toSun {
		edge := location.TransferEdge{FromID: fromID, ToID: "sun-close", DvMS: r.DvMS, TofS: r.TofS}
		if err := repo.SaveEdge(ctx, edge); err != nil {
			return fmt.Errorf("failed to save edge %s->sun-close: %w", fromID, err)
		}
	}
	return nil
}
