package geosphere

import "math"

// Intermediate returns points evenly spaced along the geodesic from p1 to
// p2, including both ends.
//
// When n >= 2 the geodesic is split into n equal pieces and n+1 points are
// returned. When n <= 0 and distance > 0, n is chosen as the rounded number
// of distance-sized pieces that fit and the pieces are then made equal.
// Any other combination, or a computed n below 2, yields just p1 and p2.
func Intermediate(s Solver, p1, p2 Point, n int, distance float64) []Point {
	if n == 1 || (n <= 0 && !(distance > 0)) {
		return []Point{p1, p2}
	}
	inv := s.Inverse(p1, p2)
	if n <= 0 {
		n = int(math.Round(inv.Distance / distance))
		if n < 2 {
			return []Point{p1, p2}
		}
	}
	step := inv.Distance / float64(n)
	out := make([]Point, n+1)
	out[0] = p1
	for i := 1; i < n; i++ {
		out[i] = s.Direct(p1, inv.Azimuth1, step*float64(i)).Point
	}
	out[n] = p2
	return out
}
