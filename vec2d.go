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

// Vec2d is a 2D floating-point vector in the (lon, lat) plane.
type Vec2d struct {
	x float64
	y float64
}

func (v Vec2d) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

func (v Vec2d) equals(o Vec2d) bool {
	return v.x == o.x && v.y == o.y
}

// lineIntersect2D finds the intersection of the line through p0-p1 with the
// line through p2-p3 in the (lon, lat) plane; the point may lie outside
// either segment. Returns ok=false when the two lines are
// parallel (determinant smaller in magnitude than EPSLN30) — the planar
// clip's ErrParallelEdges condition.
func lineIntersect2D(p0, p1, p2, p3 Vec2d) (Vec2d, bool) {
	dy1 := p1.y - p0.y
	dy2 := p3.y - p2.y
	dx1 := p1.x - p0.x
	dx2 := p3.x - p2.x
	ds1 := p0.y*p1.x - p1.y*p0.x
	ds2 := p2.y*p3.x - p3.y*p2.x
	determ := dy2*dx1 - dy1*dx2

	if math.Abs(determ) < EPSLN30 {
		return Vec2d{}, false
	}

	return Vec2d{
		x: (dx2*ds1 - dx1*ds2) / determ,
		y: (dy2*ds1 - dy1*ds2) / determ,
	}, true
}

// insideEdge reports whether point (x, y) lies inside (or on) the directed
// edge (x0,y0)->(x1,y1), using the outward normal <y1-y0, -(x1-x0)>. Lying
// exactly on the edge counts as inside.
func insideEdge(x0, y0, x1, y1, x, y float64) bool {
	const small = 1.e-12
	product := (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
	if math.Abs(product) < small {
		return true
	}
	return product <= 0
}
