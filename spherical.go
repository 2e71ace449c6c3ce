// Spherical routines in Go
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geosphere

import "math"

// Globe is a sphere representing Earth as a terrestrial globe.
var Globe = Sphere{Radius: DefaultRadius}

// Sphere solves geodesic problems with great-circle formulas on a sphere.
// It is often faster than an Ellipsoid and less accurate for Earth.
type Sphere struct {
	Radius float64 // meters
}

// Inverse solves the inverse problem on the sphere with the haversine
// formula. Azimuths are in degrees.
func (s Sphere) Inverse(p1, p2 Point) InverseResult {
	return InverseResult{
		Distance: DistanceHaversine(p1.Radians(), p2.Radians(), s.Radius),
		Azimuth1: bearing(p1, p2),
		Azimuth2: wrap180(bearing(p2, p1) + 180),
	}
}

// Direct solves the direct problem on the sphere.
func (s Sphere) Direct(origin Point, azimuth, distance float64) DirectResult {
	dst := destination(s.Radius, origin, distance, azimuth)
	return DirectResult{
		Point:   dst,
		Azimuth: wrap180(bearing(dst, origin) + 180),
	}
}

// Distance returns the great-circle distance between p1 and p2 (meters).
func (s Sphere) Distance(p1, p2 Point) float64 {
	return DistanceHaversine(p1.Radians(), p2.Radians(), s.Radius)
}

// Azimuth returns the initial bearing from p1 toward p2 (degrees).
func (s Sphere) Azimuth(p1, p2 Point) float64 {
	return bearing(p1, p2)
}

// Projector returns a TrackProjector on this sphere.
func (s Sphere) Projector() TrackProjector {
	return TrackProjector{angles: Sphere{Radius: 1}, radius: s.Radius}
}

// DistanceCosine returns the great-circle distance (meters) between two
// points given in radians, using the spherical law of cosines.
func DistanceCosine(p1, p2 RadPoint, radius float64) float64 {
	if p1 == p2 {
		return 0
	}
	φ1 := float64(p1.Lat)
	φ2 := float64(p2.Lat)
	Δλ := float64(p1.Lon - p2.Lon)
	c := math.Sin(φ1)*math.Sin(φ2) + math.Cos(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	return radius * math.Acos(clamp(c))
}

// DistanceCosineDeg is DistanceCosine for points given in degrees.
func DistanceCosineDeg(p1, p2 Point, radius float64) float64 {
	return DistanceCosine(p1.Radians(), p2.Radians(), radius)
}

// DistanceHaversine returns the great-circle distance (meters) between two
// points given in radians, using the haversine formula.
func DistanceHaversine(p1, p2 RadPoint, radius float64) float64 {
	return radius * p1.latLng().Distance(p2.latLng()).Radians()
}

// BearingCosine returns the initial bearing from p1 to p2 folded into
// [0, π), so a bearing and its reverse share a value. Identical points
// yield 0.
func BearingCosine(p1, p2 RadPoint) Radians {
	if p1 == p2 {
		return 0
	}
	φ1 := float64(p1.Lat)
	φ2 := float64(p2.Lat)
	Δλ := float64(p2.Lon - p1.Lon)
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	θ := math.Mod(math.Atan2(y, x)+math.Pi, math.Pi)
	return Radians(θ)
}

func destination(radius float64, p Point, meters, bearingDegrees float64) Point {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	// see mathforum.org/library/drmath/view/52049.html for derivation
	δ := meters / radius
	θ := bearingDegrees * degToRad
	φ1 := p.Lat * degToRad
	λ1 := p.Lon * degToRad
	φ2 := math.Asin(clamp(math.Sin(φ1)*math.Cos(δ) +
		math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	λ2 = math.Mod(λ2+3*math.Pi, twoPi) - math.Pi // normalise to -180..+180°
	return Point{Lon: λ2 * radToDeg, Lat: φ2 * radToDeg}
}

func bearing(p1, p2 Point) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	// see mathforum.org/library/drmath/view/55417.html for derivation
	φ1 := p1.Lat * degToRad
	φ2 := p2.Lat * degToRad
	Δλ := (p2.Lon - p1.Lon) * degToRad
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	θ := math.Atan2(y, x)
	return wrap180(θ * radToDeg)
}
