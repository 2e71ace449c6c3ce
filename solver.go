package geosphere

// Solver solves the direct and inverse geodesic problems on some surface.
// Ellipsoid and Sphere implement it.
type Solver interface {
	Inverse(p1, p2 Point) InverseResult
	Direct(origin Point, azimuth, distance float64) DirectResult
}

// Surface is a Solver that can also project points onto tracks.
type Surface interface {
	Solver
	Projector() TrackProjector
}

var (
	_ Surface = Ellipsoid{}
	_ Surface = Sphere{}
)
