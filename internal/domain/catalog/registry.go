package catalog

import "fmt"

// Kind identifies one of the disjoint catalog mappings.
type Kind string

const (
	KindThruster    Kind = "thrusters"
	KindReactor     Kind = "reactors"
	KindGenerator   Kind = "generators"
	KindRadiator    Kind = "radiators"
	KindRefinery    Kind = "refineries"
	KindRobonaut    Kind = "robonauts"
	KindConstructor Kind = "constructors"
	KindStorage     Kind = "storage"
	KindResource    Kind = "resources"
	KindRecipe      Kind = "recipes"
)

// kindCategories maps each part-bearing kind to its canonical category.
var kindCategories = map[Kind]Category{
	KindThruster:    CategoryThruster,
	KindReactor:     CategoryReactor,
	KindGenerator:   CategoryGenerator,
	KindRadiator:    CategoryRadiator,
	KindRefinery:    CategoryRefinery,
	KindRobonaut:    CategoryRobonaut,
	KindConstructor: CategoryConstructor,
	KindStorage:     CategoryStorage,
}

// Source is the inbound port for catalog data. Each method yields a
// read-only id-to-record mapping; loading must be idempotent.
type Source interface {
	Thrusters() (map[string]Record, error)
	Reactors() (map[string]Record, error)
	Generators() (map[string]Record, error)
	Radiators() (map[string]Record, error)
	Refineries() (map[string]Record, error)
	Robonauts() (map[string]Record, error)
	Constructors() (map[string]Record, error)
	Storage() (map[string]Record, error)
	Resources() (map[string]Record, error)
	Recipes() (map[string]Record, error)
}

// Entry is a catalog record together with the kind it was loaded from.
type Entry struct {
	Record Record
	Kind   Kind
}

// Registry holds every catalog mapping, loaded once at startup and
// immutable afterwards. Services take it as an explicit dependency.
type Registry struct {
	kinds  map[Kind]map[string]Record
	byID   map[string]Entry
	byName map[string]Entry
}

// NewRegistry loads all catalog kinds from the source.
func NewRegistry(src Source) (*Registry, error) {
	loaders := []struct {
		kind Kind
		load func() (map[string]Record, error)
	}{
		{KindThruster, src.Thrusters},
		{KindReactor, src.Reactors},
		{KindGenerator, src.Generators},
		{KindRadiator, src.Radiators},
		{KindRefinery, src.Refineries},
		{KindRobonaut, src.Robonauts},
		{KindConstructor, src.Constructors},
		{KindStorage, src.Storage},
		{KindResource, src.Resources},
		{KindRecipe, src.Recipes},
	}

	r := &Registry{
		kinds:  make(map[Kind]map[string]Record, len(loaders)),
		byID:   make(map[string]Entry),
		byName: make(map[string]Entry),
	}

	for _, l := range loaders {
		records, err := l.load()
		if err != nil {
			return nil, fmt.Errorf("load %s catalog: %w", l.kind, err)
		}
		r.kinds[l.kind] = records
		for id, rec := range records {
			entry := Entry{Record: rec, Kind: l.kind}
			r.byID[id] = entry
			if name := rec.Name(); name != "" {
				r.byName[name] = entry
			}
		}
	}

	return r, nil
}

// Kind returns one catalog mapping. The returned map must not be mutated.
func (r *Registry) Kind(kind Kind) map[string]Record {
	return r.kinds[kind]
}

// Lookup finds a record by item id across all kinds.
func (r *Registry) Lookup(itemID string) (Entry, bool) {
	e, ok := r.byID[itemID]
	return e, ok
}

// LookupByName finds a record by display name across all kinds.
func (r *Registry) LookupByName(name string) (Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// KindCategory returns the canonical category for a kind, or generic
// for the non-part kinds (resources, recipes).
func KindCategory(kind Kind) Category {
	if c, ok := kindCategories[kind]; ok {
		return c
	}
	return CategoryGeneric
}

// CategoryOf returns the canonical category for a kind.
func (r *Registry) CategoryOf(kind Kind) Category {
	return KindCategory(kind)
}

// Resource returns a resource record by id.
func (r *Registry) Resource(resourceID string) (Record, bool) {
	rec, ok := r.kinds[KindResource][resourceID]
	return rec, ok
}

// ResourceDensity returns a resource's density in kg/m3, or 0 when unknown.
func (r *Registry) ResourceDensity(resourceID string) float64 {
	rec, ok := r.Resource(resourceID)
	if !ok {
		return 0
	}
	return rec.Float("mass_per_m3_kg")
}

// techNodePrefixes assigns each category its tech-tree branch prefix.
var techNodePrefixes = map[Category]string{
	CategoryThruster:    "thr",
	CategoryReactor:     "rct",
	CategoryGenerator:   "gen",
	CategoryRadiator:    "rad",
	CategoryRobonaut:    "rbn",
	CategoryConstructor: "cst",
	CategoryRefinery:    "ref",
	CategoryStorage:     "sto",
}

// TechNodeForItem derives the tech-tree node id that gates an item:
// the category prefix joined to the item id, with refineries carrying
// their branch suffix.
func TechNodeForItem(itemID string, category Category) string {
	prefix, ok := techNodePrefixes[category]
	if !ok {
		prefix = "itm"
	}
	node := prefix + "." + itemID
	if category == CategoryRefinery {
		node += ".refining"
	}
	return node
}
