package geosphere

import "math"

// Track is the great circle through Start and End, oriented from Start to
// End. It is unbounded; see Segment for the finite version.
type Track struct {
	Start Point
	End   Point
}

// TrackProjector measures where a point lies relative to a track: how far
// off it (cross-track) and how far along it (along-track).
//
// Angles are measured on a unit surface and scaled by the projector radius.
type TrackProjector struct {
	angles Solver
	radius float64
}

// NewTrackProjector returns a projector that takes its angles from
// geodesics on UnitSphere and reports meters on a sphere of radius.
func NewTrackProjector(radius float64) TrackProjector {
	return TrackProjector{angles: UnitSphere, radius: radius}
}

// Radius returns the radius (meters) distances are scaled by.
func (tp TrackProjector) Radius() float64 {
	return tp.radius
}

// Length returns the length (meters) of the track between its ends,
// measured the same way as AlongTrack.
func (tp TrackProjector) Length(t Track) float64 {
	return tp.angles.Inverse(t.Start, t.End).Distance * tp.radius
}

// offset returns the angular distance from the track start to p and the
// difference between the azimuth to p and the track azimuth, both radians.
func (tp TrackProjector) offset(t Track, p Point) (δ, Δθ float64) {
	track := tp.angles.Inverse(t.Start, t.End)
	toP := tp.angles.Inverse(t.Start, p)
	return toP.Distance, (toP.Azimuth1 - track.Azimuth1) * degToRad
}

// CrossTrack returns the distance (meters) of p from the track. When signed
// is true the result is positive for points right of the direction of
// travel and negative for points left of it.
func (tp TrackProjector) CrossTrack(t Track, p Point, signed bool) float64 {
	δ, Δθ := tp.offset(t, p)
	xt := math.Asin(clamp(math.Sin(Δθ)*math.Sin(δ))) * tp.radius
	if signed {
		return xt
	}
	return math.Abs(xt)
}

// AlongTrack returns the distance (meters) from the track start to the foot
// of the perpendicular from p, measured along the track. It is negative when
// the foot lies behind the start and may exceed the length of the track.
func (tp TrackProjector) AlongTrack(t Track, p Point) float64 {
	δ, Δθ := tp.offset(t, p)
	xt := math.Asin(clamp(math.Sin(Δθ) * math.Sin(δ)))
	at := math.Acos(clamp(math.Cos(δ) / math.Cos(xt)))
	return sign(math.Cos(Δθ)) * at * tp.radius
}
