// Package geosphere computes distances, bearings and track offsets between
// points on an ellipsoid, on a sphere and in the plane, and densifies lines
// and polygons so that no edge exceeds a given spacing.
//
// Geodesic problems on the ellipsoid are solved with Karney's algorithms.
// The spherical formulas are closed form and faster. Every function is a
// pure function of its inputs and is safe for concurrent use.
package geosphere
