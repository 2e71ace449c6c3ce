package geosphere

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// Degrees is an angle measured in degrees.
type Degrees float64

// Radians is an angle measured in radians.
type Radians float64

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Radians(float64(d) * degToRad)
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Degrees(float64(r) * radToDeg)
}

// Angle returns r as an s1.Angle.
func (r Radians) Angle() s1.Angle {
	return s1.Angle(r)
}

// Point is a longitude/latitude pair in degrees. It is the coordinate type
// of every geodesic entry point in this package.
type Point struct {
	Lon float64
	Lat float64
}

// RadPoint is a longitude/latitude pair in radians, consumed by the
// closed-form spherical formulas.
type RadPoint struct {
	Lon Radians
	Lat Radians
}

// Radians converts p to radians.
func (p Point) Radians() RadPoint {
	return RadPoint{
		Lon: Degrees(p.Lon).Radians(),
		Lat: Degrees(p.Lat).Radians(),
	}
}

// Degrees converts p to degrees.
func (p RadPoint) Degrees() Point {
	return Point{
		Lon: float64(p.Lon.Degrees()),
		Lat: float64(p.Lat.Degrees()),
	}
}

func (p RadPoint) latLng() s2.LatLng {
	return s2.LatLng{Lat: p.Lat.Angle(), Lng: p.Lon.Angle()}
}

func (p Point) orb() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

func fromOrb(p orb.Point) Point {
	return Point{Lon: p[0], Lat: p[1]}
}

// NormalizeLon wraps a longitude (degrees) into (-180, 180].
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon <= 0 {
		lon += 360
	}
	return lon - 180
}

// wrap180 wraps degrees into [-180, 180], leaving in-range values untouched.
func wrap180(degs float64) float64 {
	if degs < -180 || degs > 180 {
		degs = math.Mod(degs, 360)
		if degs < -180 {
			degs += 360
		} else if degs > 180 {
			degs -= 360
		}
	}
	return degs
}

// clamp keeps acos/asin arguments inside [-1, 1] against rounding drift.
func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
