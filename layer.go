package geosphere

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"
)

// Kind is the kind of geometry a layer holds.
type Kind int

// Geometry kinds, ordered by dimension.
const (
	KindUnknown  Kind = iota // empty or unsupported geometry
	KindPoints               // Point, MultiPoint
	KindLines                // LineString, MultiLineString
	KindPolygons             // Ring, Polygon, MultiPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindLines:
		return "lines"
	case KindPolygons:
		return "polygons"
	}
	return "unknown"
}

func kindOf(g orb.Geometry) Kind {
	switch g := g.(type) {
	case orb.Point, orb.MultiPoint:
		return KindPoints
	case orb.LineString, orb.MultiLineString:
		return KindLines
	case orb.Ring, orb.Polygon, orb.MultiPolygon:
		return KindPolygons
	case orb.Collection:
		// a collection is as wide as its widest member
		k := KindUnknown
		for _, c := range g {
			k = max(k, kindOf(c))
		}
		return k
	}
	return KindUnknown
}

// Layer is a set of geometries sharing one spatial reference, each paired
// with a row of attributes.
type Layer struct {
	Geometries []orb.Geometry
	Attributes []geojson.Properties // parallel to Geometries; may be nil

	// CRS identifies the spatial reference. Empty means undefined.
	CRS string
	// Geographic is true when coordinates are longitude/latitude degrees.
	Geographic bool

	Extent orb.Bound
}

// NewLayer builds a layer from a feature collection. Feature properties
// become the attribute table.
func NewLayer(fc *geojson.FeatureCollection, crs string, geographic bool) *Layer {
	l := &Layer{
		Geometries: make([]orb.Geometry, len(fc.Features)),
		Attributes: make([]geojson.Properties, len(fc.Features)),
		CRS:        crs,
		Geographic: geographic,
	}
	for i, f := range fc.Features {
		l.Geometries[i] = f.Geometry
		l.Attributes[i] = f.Properties
	}
	l.ComputeExtent()
	return l
}

// FeatureCollection returns the layer as features with bounding boxes.
func (l *Layer) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, g := range l.Geometries {
		f := geojson.NewFeature(g)
		if g != nil {
			f.BBox = geojson.NewBBox(g.Bound())
		}
		if i < len(l.Attributes) && l.Attributes[i] != nil {
			f.Properties = l.Attributes[i]
		}
		fc.Append(f)
	}
	fc.BBox = geojson.NewBBox(l.Extent)
	return fc
}

// Kind reports the kind of the first geometry that has one.
func (l *Layer) Kind() Kind {
	for _, g := range l.Geometries {
		if k := kindOf(g); k != KindUnknown {
			return k
		}
	}
	return KindUnknown
}

// ComputeExtent recomputes Extent from the geometries.
func (l *Layer) ComputeExtent() {
	var ext orb.Bound
	first := true
	for _, g := range l.Geometries {
		if g == nil {
			continue
		}
		if first {
			ext = g.Bound()
			first = false
			continue
		}
		ext = ext.Union(g.Bound())
	}
	l.Extent = ext
}

// Densify returns a copy of the layer with vertices inserted per cfg on
// the WGS84 ellipsoid.
func (l *Layer) Densify(cfg DensifyConfig) (*Layer, error) {
	return NewDensifier(cfg).Densify(l)
}

// Densifier densifies layers.
type Densifier struct {
	// Ellipsoid measures geographic layers. The zero value means WGS84.
	Ellipsoid Ellipsoid
	Config    DensifyConfig
}

// NewDensifier returns a densifier measuring geographic layers on WGS84.
func NewDensifier(cfg DensifyConfig) *Densifier {
	return &Densifier{Ellipsoid: WGS84, Config: cfg}
}

// Densify returns a new layer in which no edge of any part or hole is longer
// than needed for the configured interval. Attributes are carried over and
// the extent is recomputed. On error the input is left untouched and no
// layer is returned.
func (d *Densifier) Densify(l *Layer) (*Layer, error) {
	log := Logger()
	if err := d.check(l); err != nil {
		log.Warn("densify rejected", "kind", l.Kind().String(), "crs", l.CRS, "error", err)
		return nil, err
	}
	var st stepper = planarStepper{}
	if l.Geographic && !d.Config.IgnoreGeographic {
		e := d.Ellipsoid
		if e.g == nil {
			e = WGS84
		}
		st = lonLatStepper{e}
	}
	path := func(ps []orb.Point) []orb.Point {
		return toOrb(densify(st, toPoints(ps), d.Config.Interval, d.Config.Adjust))
	}

	out := &Layer{
		Geometries: make([]orb.Geometry, len(l.Geometries)),
		Attributes: l.Attributes,
		CRS:        l.CRS,
		Geographic: l.Geographic,
	}
	var g errgroup.Group
	g.SetLimit(max(d.Config.Workers, 1))
	for i, geom := range l.Geometries {
		g.Go(func() error {
			dg, err := densifyGeometry(geom, path)
			if err != nil {
				return errors.Wrapf(err, "geometry %d", i)
			}
			out.Geometries[i] = dg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("densify failed", "error", err)
		return nil, err
	}
	out.ComputeExtent()
	log.Debug("densified layer",
		"geometries", len(l.Geometries),
		"vertices_in", countVertices(l.Geometries),
		"vertices_out", countVertices(out.Geometries),
	)
	return out, nil
}

func (d *Densifier) check(l *Layer) error {
	if l.Kind() == KindPoints {
		return errors.Wrap(ErrInvalidInput, "cannot densify points")
	}
	if !(d.Config.Interval > 0) {
		return errors.Wrapf(ErrInvalidInput, "the interval must be > 0, got %v", d.Config.Interval)
	}
	if l.CRS == "" {
		return errors.Wrap(ErrUndefinedReference, "crs not defined")
	}
	return nil
}

// densifyGeometry applies path to every vertex sequence of g: each line,
// and each polygon's outer ring and holes.
func densifyGeometry(g orb.Geometry, path func([]orb.Point) []orb.Point) (orb.Geometry, error) {
	switch g := g.(type) {
	case nil:
		return nil, nil
	case orb.Point:
		return g, nil
	case orb.MultiPoint:
		return append(orb.MultiPoint(nil), g...), nil
	case orb.LineString:
		return orb.LineString(path(g)), nil
	case orb.Ring:
		return orb.Ring(path(g)), nil
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(g))
		for i, ls := range g {
			out[i] = path(ls)
		}
		return out, nil
	case orb.Polygon:
		return densifyPolygon(g, path), nil
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(g))
		for i, p := range g {
			out[i] = densifyPolygon(p, path)
		}
		return out, nil
	case orb.Collection:
		out := make(orb.Collection, len(g))
		for i, c := range g {
			dc, err := densifyGeometry(c, path)
			if err != nil {
				return nil, err
			}
			out[i] = dc
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrInvalidInput, "unsupported geometry %T", g)
}

func densifyPolygon(p orb.Polygon, path func([]orb.Point) []orb.Point) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		out[i] = path(r)
	}
	return out
}

func countVertices(gs []orb.Geometry) int {
	n := 0
	for _, g := range gs {
		n += vertices(g)
	}
	return n
}

func vertices(g orb.Geometry) int {
	switch g := g.(type) {
	case orb.Point:
		return 1
	case orb.MultiPoint:
		return len(g)
	case orb.LineString:
		return len(g)
	case orb.Ring:
		return len(g)
	case orb.MultiLineString:
		n := 0
		for _, ls := range g {
			n += len(ls)
		}
		return n
	case orb.Polygon:
		n := 0
		for _, r := range g {
			n += len(r)
		}
		return n
	case orb.MultiPolygon:
		n := 0
		for _, p := range g {
			n += vertices(p)
		}
		return n
	case orb.Collection:
		n := 0
		for _, c := range g {
			n += vertices(c)
		}
		return n
	}
	return 0
}
