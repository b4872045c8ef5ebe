package setup

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
)

// CelestialBody describes one Sol-system body for graph expansion.
type CelestialBody struct {
	ID              string  `mapstructure:"id"`
	Name            string  `mapstructure:"name"`
	HeliocentricRKm float64 `mapstructure:"heliocentric_r_km"`
	Mu              float64 `mapstructure:"mu"`
	ParkingRKm      float64 `mapstructure:"parking_r_km"`
	OrbitNodeID     string  `mapstructure:"orbit_node_id"`
	OrbitNodeName   string  `mapstructure:"orbit_node_name"`
}

// CelestialConfig is the Sol-system expansion input.
type CelestialConfig struct {
	Bodies []CelestialBody `mapstructure:"bodies"`
}

// LoadCelestialConfig reads a celestial configuration file. Errors are
// expected in minimal deployments; the caller falls back to the
// built-in table.
func LoadCelestialConfig(path string) (*CelestialConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("celestial")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read celestial config: %w", err)
	}

	var cfg CelestialConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal celestial config: %w", err)
	}
	for _, b := range cfg.Bodies {
		if b.ID == "" || b.HeliocentricRKm <= 0 || b.Mu <= 0 || b.ParkingRKm <= 0 || b.OrbitNodeID == "" {
			return nil, fmt.Errorf("celestial body %q is incomplete", b.ID)
		}
	}
	if len(cfg.Bodies) == 0 {
		return nil, fmt.Errorf("celestial config has no bodies")
	}
	return &cfg, nil
}

// DefaultCelestialConfig is the built-in Sol-system table used when no
// external configuration loads.
func DefaultCelestialConfig() *CelestialConfig {
	return &CelestialConfig{
		Bodies: []CelestialBody{
			{
				ID: "mercury", Name: "Mercury",
				HeliocentricRKm: 57.909e6, Mu: location.MuMercury,
				ParkingRKm:  2740,
				OrbitNodeID: "mercury-orbit", OrbitNodeName: "Mercury Orbit",
			},
			{
				ID: "venus", Name: "Venus",
				HeliocentricRKm: 108.209e6, Mu: location.MuVenus,
				ParkingRKm:  6352,
				OrbitNodeID: "venus-orbit", OrbitNodeName: "Venus Orbit",
			},
			{
				ID: "earth", Name: "Earth",
				HeliocentricRKm: 149.598e6, Mu: location.MuEarth,
				ParkingRKm:  leoRadiusKm,
				OrbitNodeID: "leo", OrbitNodeName: "Low Earth Orbit",
			},
			{
				ID: "mars", Name: "Mars",
				HeliocentricRKm: 227.956e6, Mu: location.MuMars,
				ParkingRKm:  3690,
				OrbitNodeID: "mars-orbit", OrbitNodeName: "Low Mars Orbit",
			},
		},
	}
}
