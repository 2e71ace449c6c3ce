package geosphere

import "math"

// IsAntipodal reports whether p1 and p2 are on opposite sides of the globe,
// within tol degrees. The longitude test is scaled by cos(p2.Lat), so near
// the poles any pair of longitudes qualifies.
func IsAntipodal(p1, p2 Point, tol float64) bool {
	dlon := math.Abs(NormalizeLon(p1.Lon) - NormalizeLon(p2.Lon))
	dlat := math.Abs(p1.Lat + p2.Lat)
	return dlat < tol &&
		math.Cos(p2.Lat*degToRad)*math.Abs(math.Mod(dlon, 360)-180) < tol
}

// Antipode returns the point diametrically opposite p.
func Antipode(p Point) Point {
	return Point{Lon: NormalizeLon(p.Lon + 180), Lat: -p.Lat}
}

// Antipodal tests p1s against p2s elementwise, recycling the shorter slice.
// The comparisons are strict, so a tol of zero or less matches nothing.
func Antipodal(p1s, p2s []Point, tol float64) []bool {
	p1s, p2s = Recycle(p1s, p2s)
	n := min(len(p1s), len(p2s))
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = IsAntipodal(p1s[i], p2s[i], tol)
	}
	return out
}

// Antipodes returns the antipode of every point.
func Antipodes(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Antipode(p)
	}
	return out
}
