package parts

import (
	"encoding/json"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
)

// Legacy payloads disagree on the container fill field names. All aliases
// are read on decode; every alias is written back on encode so older
// clients keep seeing the key they expect.
var (
	usedM3Aliases      = []string{"used_m3", "fill_m3", "stored_m3"}
	cargoMassKgAliases = []string{"cargo_mass_kg", "contents_kg", "stored_kg"}
)

// knownKeys are the payload fields decoded into typed Part fields;
// everything else lands in Extras.
var knownKeys = map[string]bool{
	"item_id": true, "name": true, "type": true, "category_id": true,
	"mass_kg": true, "capacity_m3": true, "mass_per_m3_kg": true,
	"thrust_kn": true, "isp_s": true, "thermal_mw": true, "power_mw": true,
	"resource_id": true, "container_uid": true,
	"used_m3": true, "fill_m3": true, "stored_m3": true,
	"cargo_mass_kg": true, "contents_kg": true, "stored_kg": true,
	"fill": true, "extras": true,
}

func rawStr(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

func rawFloat(raw map[string]any, key string) (float64, bool) {
	switch v := raw[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func firstFloat(raw map[string]any, keys []string) (float64, bool) {
	for _, key := range keys {
		if v, ok := rawFloat(raw, key); ok {
			return v, true
		}
	}
	return 0, false
}

// FromRaw decodes a heterogeneous part payload into a Part, reading
// legacy fill aliases and preserving unknown fields in Extras.
func FromRaw(raw map[string]any) Part {
	p := Part{
		ItemID:     rawStr(raw, "item_id"),
		Name:       rawStr(raw, "name"),
		Type:       rawStr(raw, "type"),
		CategoryID: catalog.Category(rawStr(raw, "category_id")),
		ResourceID: rawStr(raw, "resource_id"),
	}
	p.MassKg, _ = rawFloat(raw, "mass_kg")
	p.CapacityM3, _ = rawFloat(raw, "capacity_m3")
	p.MassPerM3Kg, _ = rawFloat(raw, "mass_per_m3_kg")
	p.ThrustKn, _ = rawFloat(raw, "thrust_kn")
	p.IspS, _ = rawFloat(raw, "isp_s")
	p.ThermalMw, _ = rawFloat(raw, "thermal_mw")
	p.PowerMw, _ = rawFloat(raw, "power_mw")
	p.ContainerUID = rawStr(raw, "container_uid")

	if fillRaw, ok := raw["fill"].(map[string]any); ok {
		fill := &ContainerFill{ResourceID: rawStr(fillRaw, "resource_id")}
		fill.UsedM3, _ = rawFloat(fillRaw, "used_m3")
		fill.CargoMassKg, _ = rawFloat(fillRaw, "cargo_mass_kg")
		p.Fill = fill
	} else {
		usedM3, hasUsed := firstFloat(raw, usedM3Aliases)
		cargoKg, hasCargo := firstFloat(raw, cargoMassKgAliases)
		if hasUsed || hasCargo {
			p.Fill = &ContainerFill{
				UsedM3:      usedM3,
				CargoMassKg: cargoKg,
				ResourceID:  p.ResourceID,
			}
		}
	}

	if extrasRaw, ok := raw["extras"].(map[string]any); ok {
		p.Extras = make(map[string]any, len(extrasRaw))
		for k, v := range extrasRaw {
			p.Extras[k] = v
		}
	}

	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		if p.Extras == nil {
			p.Extras = make(map[string]any)
		}
		p.Extras[k] = v
	}

	return p
}

// FromJSON decodes a single part payload.
func FromJSON(data []byte) (Part, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Part{}, err
	}
	return FromRaw(raw), nil
}

// ToLegacyMap encodes a Part for the external boundary, writing the
// container fill into every legacy alias key alongside the canonical
// fields. This is the persistence-layer compatibility shim.
func ToLegacyMap(p *Part) map[string]any {
	out := make(map[string]any)
	for k, v := range p.Extras {
		out[k] = v
	}

	out["item_id"] = p.ItemID
	if p.Name != "" {
		out["name"] = p.Name
	}
	if p.Type != "" {
		out["type"] = p.Type
	}
	out["category_id"] = string(p.CategoryID)
	if p.MassKg != 0 {
		out["mass_kg"] = p.MassKg
	}
	if p.CapacityM3 != 0 {
		out["capacity_m3"] = p.CapacityM3
	}
	if p.MassPerM3Kg != 0 {
		out["mass_per_m3_kg"] = p.MassPerM3Kg
	}
	if p.ThrustKn != 0 {
		out["thrust_kn"] = p.ThrustKn
	}
	if p.IspS != 0 {
		out["isp_s"] = p.IspS
	}
	if p.ThermalMw != 0 {
		out["thermal_mw"] = p.ThermalMw
	}
	if p.PowerMw != 0 {
		out["power_mw"] = p.PowerMw
	}
	if p.ResourceID != "" {
		out["resource_id"] = p.ResourceID
	}
	if p.ContainerUID != "" {
		out["container_uid"] = p.ContainerUID
	}

	if p.Fill != nil {
		for _, key := range usedM3Aliases {
			out[key] = p.Fill.UsedM3
		}
		for _, key := range cargoMassKgAliases {
			out[key] = p.Fill.CargoMassKg
		}
	}

	return out
}
