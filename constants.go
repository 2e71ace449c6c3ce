package geosphere

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
	twoPi    = 2 * math.Pi
)

// WGS84 defining parameters.
const (
	WGS84SemiMajorAxis = 6378137.0
	WGS84Flattening    = 1 / 298.257223563
)

// DefaultRadius is the sphere radius (meters) used by the spherical formulas
// and the track projections when the caller has no better value.
const DefaultRadius = WGS84SemiMajorAxis

// DefaultAntipodalTolerance is a tolerance (degrees) for IsAntipodal and
// Antipodal that admits only floating point noise. It is the configured
// default.
const DefaultAntipodalTolerance = 1e-9
