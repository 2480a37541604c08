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

// ClipRect clips the polygon (lon, lat) against the axis-aligned rectangle
// [llLon, urLon] x [llLat, urLat] using the classical four-pass
// Sutherland-Hodgman algorithm (LEFT, RIGHT, BOTTOM, TOP), ping-ponging
// between two scratch buffers. Returns an empty slice pair if any pass
// empties the polygon.
func ClipRect(lon, lat []float64, llLon, llLat, urLon, urLat float64) (outLon, outLat []float64) {
	lon, lat = clipBoundary(lon, lat, func(x, y float64) bool { return x >= llLon },
		func(xLast, yLast, x, y float64) (float64, float64) {
			return llLon, yLast + (llLon-xLast)*(y-yLast)/(x-xLast)
		})
	if len(lon) == 0 {
		return nil, nil
	}

	lon, lat = clipBoundary(lon, lat, func(x, y float64) bool { return x <= urLon },
		func(xLast, yLast, x, y float64) (float64, float64) {
			return urLon, yLast + (urLon-xLast)*(y-yLast)/(x-xLast)
		})
	if len(lon) == 0 {
		return nil, nil
	}

	lon, lat = clipBoundary(lon, lat, func(x, y float64) bool { return y >= llLat },
		func(xLast, yLast, x, y float64) (float64, float64) {
			return xLast + (llLat-yLast)*(x-xLast)/(y-yLast), llLat
		})
	if len(lon) == 0 {
		return nil, nil
	}

	lon, lat = clipBoundary(lon, lat, func(x, y float64) bool { return y <= urLat },
		func(xLast, yLast, x, y float64) (float64, float64) {
			return xLast + (urLat-yLast)*(x-xLast)/(y-yLast), urLat
		})
	return lon, lat
}

// clipBoundary runs a single Sutherland-Hodgman pass against one boundary,
// given an "inside" predicate and an edge-crossing interpolator.
func clipBoundary(lon, lat []float64, inside func(x, y float64) bool, onEdge func(xLast, yLast, x, y float64) (float64, float64)) ([]float64, []float64) {
	n := len(lon)
	outLon := make([]float64, 0, n+1)
	outLat := make([]float64, 0, n+1)

	xLast, yLast := lon[n-1], lat[n-1]
	insideLast := inside(xLast, yLast)

	for i := 0; i < n; i++ {
		x, y := lon[i], lat[i]
		in := inside(x, y)
		if in != insideLast {
			ex, ey := onEdge(xLast, yLast, x, y)
			outLon = append(outLon, ex)
			outLat = append(outLat, ey)
		}
		if in {
			outLon = append(outLon, x)
			outLat = append(outLat, y)
		}
		xLast, yLast = x, y
		insideLast = in
	}
	return outLon, outLat
}

// Clip2Dx2D clips subject polygon (lon2, lat2) against clip polygon
// (lon1, lat1), both on the lon/lat plane, using the Sutherland-Hodgman
// variant that clips against each edge of an arbitrary convex polygon
// (rather than only an axis-aligned rectangle). The clip polygon must wind
// counterclockwise on the lon/lat plane: points to the left of each of its
// edges count as inside. Returns ErrParallelEdges if an edge pair that must
// intersect turns out to be parallel.
func Clip2Dx2D(lon1, lat1, lon2, lat2 []float64) ([]float64, []float64, error) {
	clipLon := append([]float64(nil), lon2...)
	clipLat := append([]float64(nil), lat2...)

	n2 := len(lon1)
	x20, y20 := lon1[n2-1], lat1[n2-1]

	for i2 := 0; i2 < n2; i2++ {
		x21, y21 := lon1[i2], lat1[i2]

		n1 := len(clipLon)
		if n1 == 0 {
			return nil, nil, nil
		}

		outLon := make([]float64, 0, n1+1)
		outLat := make([]float64, 0, n1+1)

		x10, y10 := clipLon[n1-1], clipLat[n1-1]
		insideLast := insideEdge(x20, y20, x21, y21, x10, y10)

		for i1 := 0; i1 < n1; i1++ {
			x11, y11 := clipLon[i1], clipLat[i1]
			in := insideEdge(x20, y20, x21, y21, x11, y11)
			if in != insideLast {
				pt, ok := lineIntersect2D(Vec2d{x10, y10}, Vec2d{x11, y11}, Vec2d{x20, y20}, Vec2d{x21, y21})
				if !ok {
					return nil, nil, ErrParallelEdges
				}
				outLon = append(outLon, pt.x)
				outLat = append(outLat, pt.y)
			}
			if in {
				outLon = append(outLon, x11)
				outLat = append(outLat, y11)
			}
			x10, y10 = x11, y11
			insideLast = in
		}

		clipLon, clipLat = outLon, outLat
		if len(clipLon) == 0 {
			return nil, nil, nil
		}
		if len(clipLon) > MV {
			return nil, nil, ErrVertexOverflow
		}

		x20, y20 = x21, y21
	}

	return clipLon, clipLat, nil
}
