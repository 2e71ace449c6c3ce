package geosphere

// Recycle extends the shorter of a and b by repeating it from the start
// until both have the same length. The longer length need not be a multiple
// of the shorter one. If either slice is empty, both are returned as is.
// The inputs are never modified.
func Recycle[T any](a, b []T) ([]T, []T) {
	switch {
	case len(a) == 0 || len(b) == 0 || len(a) == len(b):
		return a, b
	case len(a) < len(b):
		return cycle(a, len(b)), b
	default:
		return a, cycle(b, len(a))
	}
}

func cycle[T any](s []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s[i%len(s)]
	}
	return out
}

// Points pairs longitudes with latitudes (degrees), recycling the shorter
// slice.
func Points(lon, lat []float64) []Point {
	lon, lat = Recycle(lon, lat)
	n := min(len(lon), len(lat))
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{Lon: lon[i], Lat: lat[i]}
	}
	return out
}
