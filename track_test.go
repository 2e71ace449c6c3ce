package geosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossTrack(t *testing.T) {
	track := Track{Start: Point{0, 0}, End: Point{10, 0}}
	for name, s := range map[string]Surface{"ellipsoid": WGS84, "sphere": Globe} {
		t.Run(name, func(t *testing.T) {
			tp := s.Projector()
			assert.InDelta(t, -equatorDegree, tp.CrossTrack(track, Point{5, 1}, true), 1e-3)
			assert.InDelta(t, equatorDegree, tp.CrossTrack(track, Point{5, -1}, true), 1e-3)
			assert.InDelta(t, equatorDegree, tp.CrossTrack(track, Point{5, 1}, false), 1e-3)
			assert.InDelta(t, 0, tp.CrossTrack(track, Point{7, 0}, true), 1e-6)
			// the track is a full great circle, not just the part between its ends
			assert.InDelta(t, 2*equatorDegree, tp.CrossTrack(track, Point{40, -2}, false), 1e-3)
		})
	}
}

func TestAlongTrack(t *testing.T) {
	track := Track{Start: Point{0, 0}, End: Point{10, 0}}
	for name, s := range map[string]Surface{"ellipsoid": WGS84, "sphere": Globe} {
		t.Run(name, func(t *testing.T) {
			tp := s.Projector()
			assert.InDelta(t, 5*equatorDegree, tp.AlongTrack(track, Point{5, 1}), 1e-3)
			assert.InDelta(t, 5*equatorDegree, tp.AlongTrack(track, Point{5, -1}), 1e-3)
			assert.InDelta(t, 12*equatorDegree, tp.AlongTrack(track, Point{12, 3}), 1e-3)
			assert.InDelta(t, -3*equatorDegree, tp.AlongTrack(track, Point{-3, 1}), 1e-3)
			assert.InDelta(t, 0, tp.AlongTrack(track, track.Start), 1e-9)
		})
	}
}

func TestTrackProjectorRadius(t *testing.T) {
	track := Track{Start: Point{0, 0}, End: Point{0, 10}}
	unit := NewTrackProjector(1)
	big := NewTrackProjector(1000)
	xt := unit.CrossTrack(track, Point{2, 4}, true)
	assert.InDelta(t, xt*1000, big.CrossTrack(track, Point{2, 4}, true), 1e-9)
	// east of a northbound track is to the right
	assert.Greater(t, xt, 0.0)
}

func TestTrackProjectorLength(t *testing.T) {
	track := Track{Start: Point{0, 0}, End: Point{0, 10}}
	tp := WGS84.Projector()
	// the projector measures on a sphere of radius a, not on the ellipsoid
	assert.InDelta(t, 10*equatorDegree, tp.Length(track), 1e-3)
	assert.Greater(t, tp.Length(track), WGS84.Distance(track.Start, track.End))
	assert.InDelta(t, tp.AlongTrack(track, track.End), tp.Length(track), 1e-3)

	assert.InDelta(t, Globe.Distance(track.Start, track.End), Globe.Projector().Length(track), 1e-6)
}
