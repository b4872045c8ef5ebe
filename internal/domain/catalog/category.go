package catalog

import "strings"

// Category is the canonical item category used across parts, inventory
// and the tech tree.
type Category string

const (
	CategoryThruster         Category = "thruster"
	CategoryReactor          Category = "reactor"
	CategoryGenerator        Category = "generator"
	CategoryRobonaut         Category = "robonaut"
	CategoryConstructor      Category = "constructor"
	CategoryRefinery         Category = "refinery"
	CategoryRadiator         Category = "radiator"
	CategoryStorage          Category = "storage"
	CategoryFuel             Category = "fuel"
	CategoryRawMaterial      Category = "raw_material"
	CategoryFinishedMaterial Category = "finished_material"
	CategoryGeneric          Category = "generic"
)

// categoryAliases maps free-form category strings, lowercased, to their
// canonical category. Catalog files and legacy ship payloads disagree on
// spelling, so the table is deliberately permissive.
var categoryAliases = map[string]Category{
	"thruster":          CategoryThruster,
	"thrusters":         CategoryThruster,
	"engine":            CategoryThruster,
	"drive":             CategoryThruster,
	"reactor":           CategoryReactor,
	"reactors":          CategoryReactor,
	"generator":         CategoryGenerator,
	"generators":        CategoryGenerator,
	"robonaut":          CategoryRobonaut,
	"robonauts":         CategoryRobonaut,
	"robot":             CategoryRobonaut,
	"constructor":       CategoryConstructor,
	"constructors":      CategoryConstructor,
	"refinery":          CategoryRefinery,
	"refineries":        CategoryRefinery,
	"radiator":          CategoryRadiator,
	"radiators":         CategoryRadiator,
	"storage":           CategoryStorage,
	"tank":              CategoryStorage,
	"tanks":             CategoryStorage,
	"container":         CategoryStorage,
	"fuel":              CategoryFuel,
	"propellant":        CategoryFuel,
	"raw_material":      CategoryRawMaterial,
	"raw material":      CategoryRawMaterial,
	"ore":               CategoryRawMaterial,
	"finished_material": CategoryFinishedMaterial,
	"finished material": CategoryFinishedMaterial,
	"material":          CategoryFinishedMaterial,
	"generic":           CategoryGeneric,
}

// CanonicalItemCategory maps a free-form category string to its canonical
// category. Matching is case-insensitive; unknown inputs map to generic.
func CanonicalItemCategory(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryGeneric
}

// IsStorage reports whether the category denotes a storage part.
func (c Category) IsStorage() bool {
	return c == CategoryStorage
}
