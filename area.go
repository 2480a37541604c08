// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xgrid

import "math"

// PolyAreaDimensionless computes the unsigned area, in steradians, of a
// polygon on the lon/lat plane using the exact integral of cos(lat) along
// each edge (latitude varying linearly with longitude along the edge), so
// the result does not depend on the polygon's winding. No fix_lon
// adjustment and no R^2 scaling is applied; callers that need an
// antimeridian-safe result must normalize lon first.
func PolyAreaDimensionless(lon, lat []float64) float64 {
	n := len(lon)
	area := 0.0
	for i := 0; i < n; i++ {
		ip := (i + 1) % n
		dx := lon[ip] - lon[i]
		if dx == 0 {
			continue
		}
		dx = wrapLonDelta(dx)

		if dx != 0 {
			hdy := 0.5 * (lat[ip] - lat[i])
			edge := 2 * math.Sin(0.5*(lat[i]+lat[ip]))
			if math.Abs(hdy) >= SmallValue {
				edge *= math.Sin(hdy) / hdy
			}
			area += dx * (2 + edge)
		}
	}
	return math.Abs(area) / 2
}

// PolyAreaNoAdjust computes the polygon's spherical area in m^2 from
// already lon-normalized vertices, without calling FixLon first.
func PolyAreaNoAdjust(lon, lat []float64) float64 {
	return math.Abs(PolyAreaDimensionless(lon, lat)) * RADIUS * RADIUS
}

// PolyArea computes the polygon's spherical area in m^2, first normalizing
// longitudes around pivot=pi via FixLon (the "adjusted" variant used when
// precomputing a whole grid's per-cell areas).
func PolyArea(lon, lat []float64) float64 {
	adjLon, adjLat := FixLon(lon, lat, M_PI)
	return PolyAreaNoAdjust(adjLon, adjLat)
}

// GreatCircleArea computes the spherical-excess area, in m^2, of a convex
// polygon given as cartesian unit vectors. It is positive for a polygon
// wound clockwise as seen from outside the sphere (the winding CellCorners
// produces) and negative for the reverse winding; callers use the sign as a
// convexity/orientation check, per gridArea in the original implementation.
func GreatCircleArea(x, y, z []float64) float64 {
	n := len(x)
	if n < 3 {
		return 0
	}

	pts := make([]Vec3d, n)
	for i := range pts {
		pts[i] = Vec3d{x[i], y[i], z[i]}
	}

	// Fan-triangulate from the first vertex and sum each triangle's
	// (always non-negative) spherical excess, the same edge-length ->
	// area route the teacher's triangleEdgeLengthsToArea takes for H3
	// cell areas, generalized from 6-sided cells to an arbitrary convex
	// polygon.
	excess := 0.0
	for i := 1; i < n-1; i++ {
		excess += sphericalTriangleArea(pts[0], pts[i], pts[i+1])
	}

	// Orientation: Sum(v_i x v_{i+1}) points away from the polygon's
	// vertex centroid direction exactly when the polygon winds clockwise
	// as seen from outside, the winding the clipper takes; otherwise the
	// area is reported negative so callers can reject it as
	// not-convex / reversed.
	var edgeSum, centroid Vec3d
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edgeSum = edgeSum.add(pts[i].cross(pts[j]))
		centroid = centroid.add(pts[i])
	}
	if edgeSum.dot(centroid) > 0 {
		excess = -excess
	}

	return excess * RADIUS * RADIUS
}

// sphericalTriangleArea computes the unsigned area, in steradians, of a
// spherical triangle from its vertices via L'Huilier's theorem over the
// triangle's three side lengths (arc angles between vertex pairs).
func sphericalTriangleArea(a, b, c Vec3d) float64 {
	return triangleEdgeLengthsToArea(vectorAngle(b, c), vectorAngle(c, a), vectorAngle(a, b))
}

// triangleEdgeLengthsToArea calculates the surface area in steradians of a
// spherical triangle on the unit sphere from its three side lengths
// (angles). See https://en.wikipedia.org/wiki/Spherical_trigonometry#Area_and_spherical_excess.
func triangleEdgeLengthsToArea(a, b, c float64) float64 {
	s := (a + b + c) / 2

	a = (s - a) / 2
	b = (s - b) / 2
	c = (s - c) / 2
	s = s / 2

	return 4 * math.Atan(math.Sqrt(math.Tan(s)*math.Tan(a)*math.Tan(b)*math.Tan(c)))
}

func vectorAngle(u, v Vec3d) float64 {
	un := u.metric()
	vn := v.metric()
	if un == 0 || vn == 0 {
		return 0
	}
	cosA := clampUnit(u.dot(v) / (un * vn))
	return math.Acos(cosA)
}

// insidePolygon reports whether point p lies on the interior side of every
// edge of the convex spherical polygon poly, using each edge's half-space
// relative to the polygon's own (unnormalized) vertex centroid. This is
// independent of whether poly winds clockwise or counterclockwise, since
// the centroid is always on the interior side of its own edges for a
// convex polygon spanning less than a hemisphere.
func insidePolygon(p Vec3d, poly []Vec3d) bool {
	n := len(poly)
	var centroid Vec3d
	for _, v := range poly {
		centroid = centroid.add(v)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		normal := poly[i].cross(poly[j])
		side := normal.dot(p)
		refSide := normal.dot(centroid)
		if refSide >= 0 && side < -EPSLN10 {
			return false
		}
		if refSide < 0 && side > EPSLN10 {
			return false
		}
	}
	return true
}

// GridArea returns the adjusted (fix_lon pivot=pi, R^2-scaled) planar area
// of every cell of an nx-by-ny grid whose corners are the (nx+1)x(ny+1)
// lon/lat arrays.
func GridArea(nx, ny int, lon, lat []float64) []float64 {
	return gridAreaWith(nx, ny, lon, lat, PolyArea)
}

// GridAreaNoAdjust is GridArea without the FixLon normalization pass.
func GridAreaNoAdjust(nx, ny int, lon, lat []float64) []float64 {
	return gridAreaWith(nx, ny, lon, lat, PolyAreaNoAdjust)
}

// GridAreaDimensionless is GridArea without FixLon normalization or R^2
// scaling.
func GridAreaDimensionless(nx, ny int, lon, lat []float64) []float64 {
	return gridAreaWith(nx, ny, lon, lat, PolyAreaDimensionless)
}

func gridAreaWith(nx, ny int, lon, lat []float64, kernel func(lon, lat []float64) float64) []float64 {
	area := make([]float64, nx*ny)
	nxp := nx + 1
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cLon, cLat := cellCornersLL(nxp, lon, lat, i, j)
			area[j*nx+i] = kernel(cLon, cLat)
		}
	}
	return area
}

// GridGreatCircleArea returns the great-circle area of every cell of an
// nx-by-ny grid whose corners are the (nx+1)x(ny+1) lon/lat arrays.
func GridGreatCircleArea(nx, ny int, lon, lat []float64) []float64 {
	nxp := nx + 1
	nyp := ny + 1
	x, y, z := latLonSliceToXYZ(lon[:nxp*nyp], lat[:nxp*nyp])

	area := make([]float64, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cx, cy, cz := cellCornersXYZ(nxp, x, y, z, i, j)
			area[j*nx+i] = GreatCircleArea(cx, cy, cz)
		}
	}
	return area
}
