package geosphere

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DensifyConfig controls how vertices are inserted along edges.
type DensifyConfig struct {
	// Interval is the target spacing between vertices, in meters for
	// geographic layers and in coordinate units otherwise. Must be > 0.
	Interval float64

	// Adjust spreads each edge's inserted vertices evenly over the whole
	// edge rather than placing them exactly Interval apart.
	Adjust bool

	// IgnoreGeographic forces planar math on geographic layers.
	IgnoreGeographic bool

	// Workers bounds how many geometries of a layer are densified at once.
	// Zero or one densifies serially.
	Workers int
}

// edge is one pair of consecutive vertices, measured.
type edge struct {
	length  float64
	azimuth float64
	n       int // pieces the edge is cut into; below 2 means leave it alone
}

func (e edge) interior() int {
	if e.n < 2 {
		return 0
	}
	return e.n - 1
}

// stepper measures edges and walks along them in some coordinate space.
type stepper interface {
	measure(a, b Point) (length, azimuth float64)
	step(origin Point, azimuth, distance float64) Point
}

type lonLatStepper struct{ e Ellipsoid }

func (s lonLatStepper) measure(a, b Point) (float64, float64) {
	inv := s.e.Inverse(a, b)
	return inv.Distance, inv.Azimuth1
}

func (s lonLatStepper) step(origin Point, azimuth, distance float64) Point {
	p := s.e.Direct(origin, azimuth, distance).Point
	// keep edges that start on the antimeridian from jumping to +180
	if origin.Lon == -180 && p.Lon == 180 {
		p.Lon = -180
	}
	return p
}

type planarStepper struct{}

func (planarStepper) measure(a, b Point) (float64, float64) {
	d := planar.Distance(a.orb(), b.orb())
	θ := math.Mod(math.Atan2(b.Lon-a.Lon, b.Lat-a.Lat), twoPi)
	return d, θ
}

func (planarStepper) step(origin Point, azimuth, distance float64) Point {
	return Point{
		Lon: origin.Lon + distance*math.Sin(azimuth),
		Lat: origin.Lat + distance*math.Cos(azimuth),
	}
}

// densify returns path with vertices inserted so that every edge of length
// d is cut into floor(d/interval) pieces. The first and last vertex are
// kept as given and the input is never modified.
func densify(st stepper, path []Point, interval float64, adjust bool) []Point {
	if len(path) < 2 {
		return append([]Point(nil), path...)
	}
	edges := make([]edge, len(path)-1)
	size := len(path)
	for i := range edges {
		d, az := st.measure(path[i], path[i+1])
		edges[i] = edge{length: d, azimuth: az, n: int(math.Floor(d / interval))}
		size += edges[i].interior()
	}
	out := make([]Point, 0, size)
	for i, e := range edges {
		origin := path[i]
		out = append(out, origin)
		if e.n < 2 {
			continue
		}
		step := interval
		if adjust {
			step = e.length / float64(e.n)
		}
		for j := 1; j < e.n; j++ {
			out = append(out, st.step(origin, e.azimuth, step*float64(j)))
		}
	}
	return append(out, path[len(path)-1])
}

// DensifyLonLat inserts vertices along the geodesics of a longitude/latitude
// path on ellipsoid e. The interval is in meters.
func DensifyLonLat(e Ellipsoid, path []Point, interval float64, adjust bool) []Point {
	return densify(lonLatStepper{e}, path, interval, adjust)
}

// DensifyPlanar inserts vertices along the straight edges of a planar path.
// Point.Lon is read as x and Point.Lat as y.
func DensifyPlanar(path []Point, interval float64, adjust bool) []Point {
	return densify(planarStepper{}, path, interval, adjust)
}

func toPoints(ps []orb.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = fromOrb(p)
	}
	return out
}

func toOrb(ps []Point) []orb.Point {
	out := make([]orb.Point, len(ps))
	for i, p := range ps {
		out[i] = p.orb()
	}
	return out
}
