package catalog

import (
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
)

// BuiltinSource is the fallback catalog compiled into the binary. The
// startup sequence uses it whenever an external celestial/catalog
// configuration fails to load, so the server always has a usable catalog.
type BuiltinSource struct{}

// NewBuiltinSource creates the built-in catalog source.
func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

func (s *BuiltinSource) Thrusters() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"h2o_resistojet": {
			"id": "h2o_resistojet", "name": "Water Resistojet", "type": "thruster",
			"mass_kg": 120.0, "thrust_kn": 0.8, "isp_s": 190.0, "tech_level": 1,
		},
		"h2o_arcjet": {
			"id": "h2o_arcjet", "name": "Water Arcjet", "type": "thruster",
			"mass_kg": 260.0, "thrust_kn": 1.6, "isp_s": 430.0, "tech_level": 2,
		},
		"ntr_solid_core": {
			"id": "ntr_solid_core", "name": "Solid-Core NTR", "type": "thruster",
			"mass_kg": 2200.0, "thrust_kn": 67.0, "isp_s": 900.0, "tech_level": 2,
		},
		"ntr_gas_core": {
			"id": "ntr_gas_core", "name": "Gas-Core NTR", "type": "thruster",
			"mass_kg": 4100.0, "thrust_kn": 110.0, "isp_s": 2100.0, "tech_level": 3,
		},
	}, nil
}

func (s *BuiltinSource) Reactors() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"fission_compact": {
			"id": "fission_compact", "name": "Compact Fission Reactor", "type": "reactor",
			"mass_kg": 1800.0, "thermal_mw": 5.0, "power_mw": 1.2, "tech_level": 1,
		},
		"fission_heavy": {
			"id": "fission_heavy", "name": "Heavy Fission Reactor", "type": "reactor",
			"mass_kg": 5200.0, "thermal_mw": 18.0, "power_mw": 4.5, "tech_level": 2,
		},
	}, nil
}

func (s *BuiltinSource) Generators() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"solar_array_sm": {
			"id": "solar_array_sm", "name": "Small Solar Array", "type": "generator",
			"mass_kg": 140.0, "power_mw": 0.05, "tech_level": 1,
		},
		"brayton_unit": {
			"id": "brayton_unit", "name": "Brayton Converter", "type": "generator",
			"mass_kg": 620.0, "power_mw": 0.9, "tech_level": 2,
		},
	}, nil
}

func (s *BuiltinSource) Radiators() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"radiator_panel": {
			"id": "radiator_panel", "name": "Radiator Panel", "type": "radiator",
			"mass_kg": 90.0, "thermal_mw": 0.6, "tech_level": 1,
		},
		"droplet_radiator": {
			"id": "droplet_radiator", "name": "Droplet Radiator", "type": "radiator",
			"mass_kg": 410.0, "thermal_mw": 4.2, "tech_level": 2.5,
		},
	}, nil
}

func (s *BuiltinSource) Refineries() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"electrolyzer": {
			"id": "electrolyzer", "name": "Water Electrolyzer", "type": "refinery",
			"mass_kg": 350.0, "tech_level": 1,
		},
		"regolith_smelter": {
			"id": "regolith_smelter", "name": "Regolith Smelter", "type": "refinery",
			"mass_kg": 2700.0, "tech_level": 2,
		},
	}, nil
}

func (s *BuiltinSource) Robonauts() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"robonaut_scout": {
			"id": "robonaut_scout", "name": "Scout Robonaut", "type": "robonaut",
			"mass_kg": 210.0, "tech_level": 1,
		},
		"robonaut_miner": {
			"id": "robonaut_miner", "name": "Mining Robonaut", "type": "robonaut",
			"mass_kg": 540.0, "tech_level": 2,
		},
	}, nil
}

func (s *BuiltinSource) Constructors() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"constructor_basic": {
			"id": "constructor_basic", "name": "Basic Constructor", "type": "constructor",
			"mass_kg": 480.0, "tech_level": 1,
		},
	}, nil
}

func (s *BuiltinSource) Storage() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"water_tank_sm": {
			"id": "water_tank_sm", "name": "Small Water Tank", "type": "storage",
			"mass_kg": 150.0, "capacity_m3": 10.0, "resource_id": "water",
			"mass_per_m3_kg": 1000.0, "tech_level": 1,
		},
		"water_tank_lg": {
			"id": "water_tank_lg", "name": "Large Water Tank", "type": "storage",
			"mass_kg": 900.0, "capacity_m3": 75.0, "resource_id": "water",
			"mass_per_m3_kg": 1000.0, "tech_level": 1,
		},
		"cargo_hold": {
			"id": "cargo_hold", "name": "Cargo Hold", "type": "storage",
			"mass_kg": 320.0, "capacity_m3": 40.0, "tech_level": 1,
		},
	}, nil
}

func (s *BuiltinSource) Resources() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"water": {
			"id": "water", "name": "Water", "type": "resource",
			"mass_per_m3_kg": 1000.0, "tech_level": 1,
		},
		"hydrogen": {
			"id": "hydrogen", "name": "Hydrogen", "type": "resource",
			"mass_per_m3_kg": 71.0, "tech_level": 1,
		},
		"oxygen": {
			"id": "oxygen", "name": "Oxygen", "type": "resource",
			"mass_per_m3_kg": 1141.0, "tech_level": 1,
		},
		"regolith": {
			"id": "regolith", "name": "Regolith", "type": "resource",
			"mass_per_m3_kg": 1500.0, "tech_level": 1,
		},
		"iron": {
			"id": "iron", "name": "Iron", "type": "resource",
			"mass_per_m3_kg": 7870.0, "tech_level": 1,
		},
		"silicates": {
			"id": "silicates", "name": "Silicates", "type": "resource",
			"mass_per_m3_kg": 2650.0, "tech_level": 1,
		},
	}, nil
}

func (s *BuiltinSource) Recipes() (map[string]catalog.Record, error) {
	return map[string]catalog.Record{
		"electrolysis": {
			"id": "electrolysis", "name": "Water Electrolysis", "type": "recipe",
			"input_resource": "water", "outputs": "hydrogen,oxygen",
		},
		"regolith_refining": {
			"id": "regolith_refining", "name": "Regolith Refining", "type": "recipe",
			"input_resource": "regolith", "outputs": "iron,silicates",
		},
	}, nil
}
