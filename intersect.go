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

// arcIntersection is the result of intersecting a subject great-circle arc
// (a1,a2) against a clip great-circle arc (q1,q2).
type arcIntersection struct {
	pt      Vec3d
	ua      float64 // arc parameter along a1->a2, in [0,1]
	uq      float64 // arc parameter along q1->q2, in [0,1]
	inbound int     // 1: subject exits clip here, 2: subject enters clip here
}

// lineIntersect2D3D intersects two great-circle arcs, a1->a2 (the subject
// edge) and q1->q2 (the clip edge). q3 is the clip polygon's next vertex
// after q2, needed to classify the crossing as inbound (subject entering
// the clip polygon) or outbound.
//
// Each arc is represented as the intersection of a plane spanned by its two
// endpoints and the sphere's center with the unit sphere; the two arcs'
// planes intersect in a line through the origin, and that line meets the
// sphere at the two antipodal points where the great circles cross. Only
// the point on a1's side (non-negative dot product with a1) is tried, and
// it is accepted when it lies within both arcs' parameter ranges; the
// antipodal point is not tried.
func lineIntersect2D3D(a1, a2, q1, q2, q3 Vec3d) (arcIntersection, bool) {
	if samePoint(a1, q1) {
		return arcIntersection{pt: a1, ua: 0, uq: 0}, true
	}
	if samePoint(a1, q2) {
		return arcIntersection{pt: a1, ua: 0, uq: 1}, true
	}
	if samePoint(a2, q1) {
		return arcIntersection{pt: a2, ua: 1, uq: 0}, true
	}
	if samePoint(a2, q2) {
		return arcIntersection{pt: a2, ua: 1, uq: 1}, true
	}

	planeA := a1.cross(a2)
	planeQ := q1.cross(q2)

	line := planeA.cross(planeQ)
	norm := line.metric()
	if norm < EPSLN30 {
		// Coincident (or antipodal-parallel) great circles: no well
		// defined single crossing.
		return arcIntersection{}, false
	}
	line = Vec3d{line.x / norm, line.y / norm, line.z / norm}

	// The line meets the sphere at +-line; pick whichever candidate lies
	// closer to the subject arc's first endpoint so ua, uq below resolve
	// to the correct one of the two antipodal crossings.
	candidate := line
	if candidate.dot(a1) < 0 {
		candidate = Vec3d{-line.x, -line.y, -line.z}
	}

	ua, okA := arcParameter(a1, a2, candidate)
	if !okA {
		return arcIntersection{}, false
	}
	ua = snap01(ua, EPSLN8)
	if ua < 0 || ua > 1 {
		return arcIntersection{}, false
	}

	uq, okQ := arcParameter(q1, q2, candidate)
	if !okQ {
		return arcIntersection{}, false
	}
	uq = snap01(uq, EPSLN8)
	if uq < 0 || uq > 1 {
		return arcIntersection{}, false
	}

	pt := Vec3d{
		a1.x + ua*(a2.x-a1.x),
		a1.y + ua*(a2.y-a1.y),
		a1.z + ua*(a2.z-a1.z),
	}
	pn := pt.metric()
	pt = Vec3d{pt.x / pn, pt.y / pn, pt.z / pn}

	result := arcIntersection{pt: pt, ua: ua, uq: uq}

	if uq != 0 && uq != 1 {
		p1 := a2.sub(a1)
		v1 := q2.sub(q1)
		v2 := q3.sub(q2)

		c1 := v1.cross(v2)
		c2 := v1.cross(p1)
		sense := c1.dot(c2)
		if sense > 0 {
			result.inbound = 2 // v1 turning into v2 in the clip's sense
		} else {
			result.inbound = 1
		}
	}

	return result, true
}

// arcParameter projects point p (known to lie on the great circle through
// a1,a2) onto the chord a1->a2 and returns the fractional position.
func arcParameter(a1, a2, p Vec3d) (float64, bool) {
	d := a2.sub(a1)
	denom := d.dot(d)
	if denom < EPSLN30 {
		return 0, false
	}
	return p.sub(a1).dot(d) / denom, true
}

func snap01(u, eps float64) float64 {
	if math.Abs(u) < eps {
		return 0
	}
	if math.Abs(u-1) < eps {
		return 1
	}
	return u
}
