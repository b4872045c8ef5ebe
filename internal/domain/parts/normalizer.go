package parts

import (
	"strings"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/pkg/utils"
)

// Normalize canonicalizes a heterogeneous part list against the catalog.
// Each returned part has a resolved item id, catalog-backed numeric
// attributes, a canonical category, and, for storage parts, a stable
// container UID. Normalization is idempotent: applying it twice yields
// a structurally equal result.
func Normalize(raw []Part, reg *catalog.Registry) []Part {
	out := make([]Part, len(raw))
	for i := range raw {
		out[i] = normalizeOne(raw[i], reg)
	}
	return out
}

func normalizeOne(p Part, reg *catalog.Registry) Part {
	p = p.Clone()

	entry, found := resolveCatalogEntry(&p, reg)
	if found {
		if p.ItemID == "" {
			p.ItemID = entry.Record.ID()
		}
		if p.Name == "" {
			p.Name = entry.Record.Name()
		}
		fillFromCatalog(&p, entry, reg)
	}
	if p.ItemID == "" {
		p.ItemID = fallbackItemID(&p)
	}

	p.CategoryID = resolveCategory(&p, entry, found)
	if p.Type == "" {
		p.Type = string(p.CategoryID)
	}

	if p.IsStorage() && p.ContainerUID == "" {
		p.ContainerUID = utils.NewContainerUID()
	}

	return p
}

// resolveCatalogEntry matches the part to a catalog record by item id,
// then display name, then type string.
func resolveCatalogEntry(p *Part, reg *catalog.Registry) (catalog.Entry, bool) {
	if p.ItemID != "" {
		if e, ok := reg.Lookup(p.ItemID); ok {
			return e, true
		}
	}
	if p.Name != "" {
		if e, ok := reg.LookupByName(p.Name); ok {
			return e, true
		}
	}
	if p.Type != "" {
		if e, ok := reg.Lookup(p.Type); ok {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

// fillFromCatalog copies missing attributes from the catalog record.
// Numeric performance attributes of thrusters, reactors, generators and
// radiators always come from the catalog; player payloads cannot tune them.
func fillFromCatalog(p *Part, entry catalog.Entry, reg *catalog.Registry) {
	rec := entry.Record
	if p.MassKg == 0 {
		p.MassKg = rec.Float("mass_kg")
	}
	if p.CapacityM3 == 0 {
		p.CapacityM3 = rec.Float("capacity_m3")
	}

	switch reg.CategoryOf(entry.Kind) {
	case catalog.CategoryThruster:
		p.ThrustKn = rec.Float("thrust_kn")
		p.IspS = rec.Float("isp_s")
	case catalog.CategoryReactor:
		p.ThermalMw = rec.Float("thermal_mw")
		p.PowerMw = rec.Float("power_mw")
	case catalog.CategoryGenerator:
		p.PowerMw = rec.Float("power_mw")
	case catalog.CategoryRadiator:
		p.ThermalMw = rec.Float("thermal_mw")
	case catalog.CategoryStorage:
		if p.ResourceID == "" {
			p.ResourceID = rec.Str("resource_id")
		}
		if p.MassPerM3Kg == 0 {
			p.MassPerM3Kg = rec.Float("mass_per_m3_kg")
		}
		if p.MassPerM3Kg == 0 && p.ResourceID != "" {
			p.MassPerM3Kg = reg.ResourceDensity(p.ResourceID)
		}
	}
}

// resolveCategory picks the canonical category: explicit payload category
// first, then the catalog kind, then the free-form type string.
func resolveCategory(p *Part, entry catalog.Entry, found bool) catalog.Category {
	if p.CategoryID != "" {
		if c := catalog.CanonicalItemCategory(string(p.CategoryID)); c != catalog.CategoryGeneric {
			return c
		}
		// An already-canonical generic stays generic.
		if p.CategoryID == catalog.CategoryGeneric {
			return catalog.CategoryGeneric
		}
	}
	if found {
		if c := catalog.KindCategory(entry.Kind); c != catalog.CategoryGeneric {
			return c
		}
	}
	if p.Type != "" {
		return catalog.CanonicalItemCategory(p.Type)
	}
	return catalog.CategoryGeneric
}

// fallbackItemID derives a stable identifier from the part's name or
// type when the catalog has no match.
func fallbackItemID(p *Part) string {
	base := p.Name
	if base == "" {
		base = p.Type
	}
	if base == "" {
		base = "unknown_part"
	}
	slug := strings.ToLower(strings.TrimSpace(base))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	return "part_" + strings.Trim(slug, "_")
}
