package geosphere

import "math"

// Segment is the finite geodesic between A and B.
type Segment struct {
	A Point
	B Point
}

// Track returns the unbounded track through the segment, oriented A to B.
func (seg Segment) Track() Track {
	return Track{Start: seg.A, End: seg.B}
}

// reverse returns the track oriented B to A.
func (seg Segment) reverse() Track {
	return Track{Start: seg.B, End: seg.A}
}

// segmentFit holds the along-track distances from both ends of a segment.
// fromA, fromB and span are projector distances; ab is on the surface.
type segmentFit struct {
	ab      InverseResult // A to B on the surface
	span    float64       // A to B as the projector measures it
	fromA   float64
	fromB   float64
	outside bool
}

// fit decides whether the perpendicular foot of p falls within the segment.
// The foot lies outside when it is at least a segment length away from
// either end.
func fit(s Surface, seg Segment, p Point) segmentFit {
	tp := s.Projector()
	f := segmentFit{
		ab:    s.Inverse(seg.A, seg.B),
		span:  tp.Length(seg.Track()),
		fromA: tp.AlongTrack(seg.Track(), p),
		fromB: tp.AlongTrack(seg.reverse(), p),
	}
	f.outside = !(f.span > 0) || f.fromA >= f.span || f.fromB >= f.span
	return f
}

// surface converts a projector distance along the segment to a distance on
// the surface.
func (f segmentFit) surface(d float64) float64 {
	return d * f.ab.Distance / f.span
}

// DistanceToSegment returns the shortest distance (meters) from p to the
// segment on surface s. When the perpendicular foot of p falls beyond either
// end, the distance to the nearer end is returned.
func DistanceToSegment(s Surface, seg Segment, p Point) float64 {
	f := fit(s, seg, p)
	if f.outside {
		d1 := s.Inverse(seg.A, p).Distance
		d2 := s.Inverse(seg.B, p).Distance
		return math.Min(d1, d2)
	}
	return s.Projector().CrossTrack(seg.Track(), p, false)
}

// NearestOnSegment returns the point of the segment closest to p along with
// its distance (meters) from p.
func NearestOnSegment(s Surface, seg Segment, p Point) (Point, float64) {
	f := fit(s, seg, p)
	if f.outside {
		d1 := s.Inverse(seg.A, p).Distance
		d2 := s.Inverse(seg.B, p).Distance
		if d1 < d2 {
			return seg.A, d1
		}
		return seg.B, d2
	}
	cross := s.Projector().CrossTrack(seg.Track(), p, false)
	if f.fromA < f.fromB {
		return s.Direct(seg.A, f.ab.Azimuth1, f.surface(f.fromA)).Point, cross
	}
	ba := s.Inverse(seg.B, seg.A)
	return s.Direct(seg.B, ba.Azimuth1, f.surface(f.fromB)).Point, cross
}
