package geosphere

import "github.com/tidwall/geodesic"

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(WGS84SemiMajorAxis, WGS84Flattening)

// UnitSphere is a sphere of radius one. Distances on it are angles in
// radians, which is what the track projections measure with.
var UnitSphere = NewEllipsoid(1, 0)

// Ellipsoid is an immutable reference surface for solving geodesic problems.
// It is safe to copy and to share between goroutines. The zero value is not
// usable; construct one with NewEllipsoid.
type Ellipsoid struct {
	g *geodesic.Ellipsoid
	a float64
	f float64
}

// NewEllipsoid initializes a new ellipsoid.
//
// Param a is the equatorial radius (meters).
// Param f is the flattening factor of the ellipsoid.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(a, f float64) Ellipsoid {
	return Ellipsoid{g: geodesic.NewEllipsoid(a, f), a: a, f: f}
}

// SemiMajorAxis of the Ellipsoid (meters)
func (e Ellipsoid) SemiMajorAxis() float64 {
	return e.a
}

// Flattening of the Ellipsoid
func (e Ellipsoid) Flattening() float64 {
	return e.f
}

// InverseResult is the solution of the inverse geodesic problem.
type InverseResult struct {
	Distance float64 // meters
	Azimuth1 float64 // degrees at point 1, clockwise from north
	Azimuth2 float64 // forward azimuth at point 2 (degrees)
}

// DirectResult is the solution of the direct geodesic problem.
type DirectResult struct {
	Point
	Azimuth float64 // forward azimuth at the destination (degrees)
}

// Inverse solves the inverse geodesic problem between p1 and p2.
//
// Latitudes should be in the range [-90,+90]. The returned azimuths are in
// the range [-180,+180]. When p1 == p2 the distance is zero and the
// azimuths carry no meaning.
func (e Ellipsoid) Inverse(p1, p2 Point) InverseResult {
	var r InverseResult
	e.g.Inverse(p1.Lat, p1.Lon, p2.Lat, p2.Lon, &r.Distance, &r.Azimuth1, &r.Azimuth2)
	return r
}

// Direct solves the direct geodesic problem: starting at origin with the
// initial azimuth (degrees), travel distance meters (negative is ok).
//
// The returned longitude and azimuth are in the range [-180,+180].
func (e Ellipsoid) Direct(origin Point, azimuth, distance float64) DirectResult {
	var r DirectResult
	e.g.Direct(origin.Lat, origin.Lon, azimuth, distance, &r.Lat, &r.Lon, &r.Azimuth)
	return r
}

// Distance returns the geodesic distance between p1 and p2 (meters).
func (e Ellipsoid) Distance(p1, p2 Point) float64 {
	return e.Inverse(p1, p2).Distance
}

// Azimuth returns the initial azimuth from p1 toward p2 (degrees).
func (e Ellipsoid) Azimuth(p1, p2 Point) float64 {
	return e.Inverse(p1, p2).Azimuth1
}

// Length returns the geodesic length of the polyline through path (meters).
//
// The length is accumulated at twice the standard floating point precision
// to guard against the loss of accuracy with many vertices.
func (e Ellipsoid) Length(path []Point) float64 {
	if len(path) < 2 {
		return 0
	}
	p := e.g.PolygonInit(true)
	for _, v := range path {
		p.AddPoint(v.Lat, v.Lon)
	}
	var perimeter float64
	p.Compute(false, false, nil, &perimeter)
	return perimeter
}

// Area returns the area (square meters) and perimeter (meters) of the
// geodesic polygon with the given vertices. The ring need not be closed.
// Counter-clockwise rings have a positive area, clockwise rings a negative
// one.
func (e Ellipsoid) Area(ring []Point) (area, perimeter float64) {
	if len(ring) < 3 {
		return 0, e.Length(ring)
	}
	p := e.g.PolygonInit(false)
	for _, v := range ring {
		p.AddPoint(v.Lat, v.Lon)
	}
	p.Compute(false, true, &area, &perimeter)
	return area, perimeter
}

// Projector returns a TrackProjector measuring on a sphere with the
// ellipsoid's equatorial radius, angles taken from geodesics on UnitSphere.
func (e Ellipsoid) Projector() TrackProjector {
	return NewTrackProjector(e.a)
}
