package location

import "math"

// Gravitational parameters, km3/s2.
const (
	MuSun     = 1.32712440018e11
	MuEarth   = 3.986004418e5
	MuLuna    = 4.9048695e3
	MuMars    = 4.282837e4
	MuMercury = 2.2032e4
	MuVenus   = 3.24859e5
)

// HohmannResult carries a transfer's cost and duration.
type HohmannResult struct {
	DvMS float64
	TofS float64
}

// InterplanetaryTransfer computes the Hohmann transfer between two
// circular heliocentric orbits, with hyperbolic escape and capture at
// parking radii around the origin and destination bodies.
//
// r1Km, r2Km: heliocentric orbit radii of the two bodies.
// muOrigin, muDest: gravitational parameters of the bodies, km3/s2.
// rpOriginKm, rpDestKm: parking orbit radii about each body.
func InterplanetaryTransfer(r1Km, r2Km, muOrigin, rpOriginKm, muDest, rpDestKm float64) HohmannResult {
	v1 := math.Sqrt(MuSun / r1Km)
	v2 := math.Sqrt(MuSun / r2Km)
	a := (r1Km + r2Km) / 2
	vt1 := math.Sqrt(MuSun * (2/r1Km - 1/a))
	vt2 := math.Sqrt(MuSun * (2/r2Km - 1/a))

	vInfDepart := math.Abs(vt1 - v1)
	vInfArrive := math.Abs(v2 - vt2)

	dvDepart := math.Sqrt(vInfDepart*vInfDepart+2*muOrigin/rpOriginKm) - math.Sqrt(muOrigin/rpOriginKm)
	dvArrive := math.Sqrt(vInfArrive*vInfArrive+2*muDest/rpDestKm) - math.Sqrt(muDest/rpDestKm)

	return HohmannResult{
		DvMS: (dvDepart + dvArrive) * 1000,
		TofS: math.Pi * math.Sqrt(a*a*a/MuSun),
	}
}

// OrbitChange computes a two-burn Hohmann transfer between two circular
// orbits around a single body with gravitational parameter mu (km3/s2).
func OrbitChange(mu, r1Km, r2Km float64) HohmannResult {
	if r1Km == r2Km {
		return HohmannResult{}
	}
	a := (r1Km + r2Km) / 2
	dv1 := math.Abs(math.Sqrt(mu*(2/r1Km-1/a)) - math.Sqrt(mu/r1Km))
	dv2 := math.Abs(math.Sqrt(mu/r2Km) - math.Sqrt(mu*(2/r2Km-1/a)))
	return HohmannResult{
		DvMS: (dv1 + dv2) * 1000,
		TofS: math.Pi * math.Sqrt(a*a*a/mu),
	}
}
