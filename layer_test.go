package geosphere

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() orb.Polygon {
	return orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {1, 3}, {3, 3}, {1, 1}},
	}
}

func testLayer() *Layer {
	l := &Layer{
		Geometries: []orb.Geometry{
			square(),
			orb.LineString{{10, 10}, {13, 10}},
		},
		Attributes: []geojson.Properties{
			{"name": "square"},
			{"name": "line"},
		},
		CRS:        "EPSG:4326",
		Geographic: true,
	}
	l.ComputeExtent()
	return l
}

func TestLayerKind(t *testing.T) {
	tests := []struct {
		geoms []orb.Geometry
		want  Kind
	}{
		{nil, KindUnknown},
		{[]orb.Geometry{orb.Point{1, 2}}, KindPoints},
		{[]orb.Geometry{orb.MultiPoint{{1, 2}}}, KindPoints},
		{[]orb.Geometry{orb.LineString{{1, 2}, {3, 4}}}, KindLines},
		{[]orb.Geometry{orb.MultiLineString{{{1, 2}, {3, 4}}}}, KindLines},
		{[]orb.Geometry{square()}, KindPolygons},
		{[]orb.Geometry{orb.MultiPolygon{square()}}, KindPolygons},
		{[]orb.Geometry{orb.Collection{orb.Collection{}, orb.LineString{{1, 2}}}}, KindLines},
	}
	for _, tt := range tests {
		l := &Layer{Geometries: tt.geoms}
		assert.Equal(t, tt.want, l.Kind(), "%v", tt.geoms)
	}
	assert.Equal(t, "polygons", KindPolygons.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestLayerDensify(t *testing.T) {
	in := testLayer()
	out, err := in.Densify(DensifyConfig{Interval: 100_000})
	require.NoError(t, err)

	poly := out.Geometries[0].(orb.Polygon)
	require.Len(t, poly, 2)
	orig := square()
	for i, ring := range poly {
		assert.Greater(t, len(ring), len(orig[i]))
		assert.Equal(t, orig[i][0], ring[0])
		assert.Equal(t, orig[i][len(orig[i])-1], ring[len(ring)-1])
	}
	line := out.Geometries[1].(orb.LineString)
	assert.Len(t, line, 4) // ~329 km: 3 pieces
	assert.Equal(t, orb.Point{10, 10}, line[0])
	assert.Equal(t, orb.Point{13, 10}, line[3])

	assert.Equal(t, in.Attributes, out.Attributes)
	assert.Equal(t, in.CRS, out.CRS)
	assert.True(t, out.Geographic)

	// geodesics along a parallel bow toward the pole
	assert.InDelta(t, 0, out.Extent.Min[0], 1e-9)
	assert.InDelta(t, 0, out.Extent.Min[1], 1e-9)
	assert.InDelta(t, 13, out.Extent.Max[0], 1e-9)
	assert.Greater(t, out.Extent.Max[1], 10.0)
	assert.InDelta(t, 10, out.Extent.Max[1], 0.01)
	assert.Greater(t, poly.Bound().Max[1], 4.0)

	assert.Equal(t, testLayer(), in, "input modified")
}

func TestLayerDensifyPlanar(t *testing.T) {
	l := &Layer{
		Geometries: []orb.Geometry{orb.LineString{{0, 0}, {10, 0}}},
		CRS:        "EPSG:3857",
	}
	out, err := l.Densify(DensifyConfig{Interval: 1})
	require.NoError(t, err)
	assert.Len(t, out.Geometries[0], 11)
	assert.Equal(t, orb.Point{0, 0}, out.Extent.Min)
	assert.InDelta(t, 10, out.Extent.Max[0], 1e-12)
	assert.InDelta(t, 0, out.Extent.Max[1], 1e-12)

	// degrees treated as plain numbers
	l.Geographic = true
	out, err = l.Densify(DensifyConfig{Interval: 1, IgnoreGeographic: true})
	require.NoError(t, err)
	assert.Len(t, out.Geometries[0], 11)
}

func TestLayerDensifyErrors(t *testing.T) {
	points := &Layer{
		Geometries: []orb.Geometry{orb.Point{1, 2}},
		CRS:        "EPSG:4326",
		Geographic: true,
	}
	out, err := points.Densify(DensifyConfig{Interval: 10})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrInvalidInput), "%v", err)

	for _, interval := range []float64{0, -5} {
		out, err = testLayer().Densify(DensifyConfig{Interval: interval})
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, ErrInvalidInput), "%v", err)
	}

	noCRS := testLayer()
	noCRS.CRS = ""
	out, err = noCRS.Densify(DensifyConfig{Interval: 10})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrUndefinedReference), "%v", err)

	bad := testLayer()
	bad.Geometries = append(bad.Geometries, orb.Bound{})
	before := testLayer()
	before.Geometries = append(before.Geometries, orb.Bound{})
	out, err = bad.Densify(DensifyConfig{Interval: 100_000, Workers: 4})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrInvalidInput), "%v", err)
	assert.Equal(t, before, bad, "input modified")
}

func TestLayerDensifyWorkers(t *testing.T) {
	l := &Layer{CRS: "EPSG:4326", Geographic: true}
	for i := 0; i < 50; i++ {
		x := float64(i)
		l.Geometries = append(l.Geometries, orb.MultiLineString{
			{{x, -20}, {x + 1, 20}},
			{{-x, 0}, {-x - 2, 5}},
		})
	}
	serial, err := l.Densify(DensifyConfig{Interval: 75_000, Adjust: true})
	require.NoError(t, err)
	parallel, err := l.Densify(DensifyConfig{Interval: 75_000, Adjust: true, Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestLayerDensifyCollection(t *testing.T) {
	l := &Layer{
		Geometries: []orb.Geometry{
			orb.Collection{
				orb.Point{5, 5},
				orb.Ring{{0, 0}, {0, 10}, {10, 10}, {0, 0}},
				orb.MultiPolygon{square()},
			},
			nil,
		},
		CRS: "local",
	}
	out, err := l.Densify(DensifyConfig{Interval: 1})
	require.NoError(t, err)
	c := out.Geometries[0].(orb.Collection)
	assert.Equal(t, orb.Point{5, 5}, c[0])
	assert.Greater(t, len(c[1].(orb.Ring)), 4)
	assert.Greater(t, len(c[2].(orb.MultiPolygon)[0][0]), 5)
	assert.Nil(t, out.Geometries[1])
}

func TestLayerFeatureCollection(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.LineString{{0, 0}, {0, 3}})
	f.Properties["id"] = 7
	fc.Append(f)

	l := NewLayer(fc, "EPSG:4326", true)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{0, 3}}, l.Extent)

	out, err := l.Densify(DensifyConfig{Interval: 100_000})
	require.NoError(t, err)
	back := out.FeatureCollection()
	require.Len(t, back.Features, 1)
	assert.Equal(t, 7, back.Features[0].Properties["id"])
	assert.Len(t, back.Features[0].Geometry, 4)
	assert.Equal(t, geojson.NewBBox(out.Extent), back.BBox)
}

func TestDensifierZeroEllipsoid(t *testing.T) {
	cfg := DensifyConfig{Interval: 100_000}
	got, err := (&Densifier{Config: cfg}).Densify(testLayer())
	require.NoError(t, err)
	want, err := NewDensifier(cfg).Densify(testLayer())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
