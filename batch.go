package geosphere

// DistanceBatch returns the distance (meters) between p1s[i] and p2s[i] for
// every i, recycling the shorter slice.
func DistanceBatch(s Solver, p1s, p2s []Point) []float64 {
	return pairwise(s, p1s, p2s, func(r InverseResult) float64 { return r.Distance })
}

// AzimuthBatch returns the initial azimuth (degrees) from p1s[i] toward
// p2s[i] for every i, recycling the shorter slice.
func AzimuthBatch(s Solver, p1s, p2s []Point) []float64 {
	return pairwise(s, p1s, p2s, func(r InverseResult) float64 { return r.Azimuth1 })
}

func pairwise(s Solver, p1s, p2s []Point, pick func(InverseResult) float64) []float64 {
	p1s, p2s = Recycle(p1s, p2s)
	n := min(len(p1s), len(p2s))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = pick(s.Inverse(p1s[i], p2s[i]))
	}
	return out
}

// DistanceToSegmentBatch returns the distance (meters) of every point from
// seg.
func DistanceToSegmentBatch(s Surface, ps []Point, seg Segment) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = DistanceToSegment(s, seg, p)
	}
	return out
}
