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

// recordedIntersection is one entry of the (deduplicated) intersectList:
// a crossing point plus which edge of each polygon it falls on.
type recordedIntersection struct {
	pt      Vec3d
	i1, i2  int // subject/clip edge start index
	u1, u2  float64
	inbound int
}

// edgeCrossing is an interior (0 < u < 1) crossing pending insertion into a
// polygon's vertex list, on the edge starting at vertex index "from".
type edgeCrossing struct {
	from    int
	u       float64
	uOther  float64
	inbound int
	pt      Vec3d
}

// ClipGreatCircle clips subject polygon (x1,y1,z1) against clip polygon
// (x2,y2,z2), both convex spherical quadrilaterals given as cartesian unit
// vectors in the package's clockwise-from-outside winding. criteria pads
// the early bounding-box reject test (RANGE_CHECK_CRITERIA). Returns nil
// slices (no error) when the two polygons do not overlap.
func ClipGreatCircle(x1, y1, z1, x2, y2, z2 []float64, criteria float64) (ox, oy, oz []float64, err error) {
	box1 := xyzBoxOf(x1, y1, z1)
	box2 := xyzBoxOf(x2, y2, z2)
	if box1.disjoint(box2, criteria) {
		return nil, nil, nil, nil
	}

	subjPts := toVec3Slice(x1, y1, z1)
	clipPts := toVec3Slice(x2, y2, z2)

	if GreatCircleArea(x1, y1, z1) <= 0 {
		return nil, nil, nil, ErrNotConvex
	}
	if GreatCircleArea(x2, y2, z2) <= 0 {
		return nil, nil, nil, ErrNotConvex
	}

	n1, n2 := len(subjPts), len(clipPts)

	var intersections []recordedIntersection
	subjEdges := map[int][]edgeCrossing{}
	clipEdges := map[int][]edgeCrossing{}
	subjSnap := map[int]recordedIntersection{} // vertex index -> snapped intersection (u==0 or 1)
	clipSnap := map[int]recordedIntersection{}

	for i1 := 0; i1 < n1; i1++ {
		i1p := (i1 + 1) % n1
		p1a, p1b := subjPts[i1], subjPts[i1p]
		for i2 := 0; i2 < n2; i2++ {
			i2p := (i2 + 1) % n2
			i2p2 := (i2 + 2) % n2
			q1, q2, q3 := clipPts[i2], clipPts[i2p], clipPts[i2p2]

			res, ok := lineIntersect2D3D(p1a, p1b, q1, q2, q3)
			if !ok {
				continue
			}
			if dupIntersection(intersections, res.pt) {
				continue
			}

			ri := recordedIntersection{pt: res.pt, i1: i1, i2: i2, u1: res.ua, u2: res.uq, inbound: res.inbound}
			intersections = append(intersections, ri)

			recordEdgeHit(subjEdges, subjSnap, i1, i1p, res.ua, res.uq, res.inbound, res.pt)
			recordEdgeHit(clipEdges, clipSnap, i2, i2p, res.uq, res.ua, res.inbound, res.pt)
		}
	}

	subjList := buildAugmentedList(subjPts, clipPts, subjEdges, subjSnap)
	clipList := buildAugmentedList(clipPts, subjPts, clipEdges, clipSnap)

	firstIdx := -1
	for i, xs := range intersections {
		if xs.inbound == 2 {
			firstIdx = i
			break
		}
	}

	if firstIdx >= 0 {
		out, ok, terr := traverse(subjList, clipList, intersections[firstIdx].pt, len(intersections))
		if terr != nil {
			return nil, nil, nil, terr
		}
		if ok {
			if len(out) > MV {
				return nil, nil, nil, ErrVertexOverflow
			}
			return splitVec3(out)
		}
	}

	// No unambiguous inbound intersection (or the traversal produced a
	// degenerate <3 vertex result): fall back to the full-containment
	// cases the spec names before concluding there is no overlap.
	if allInside(subjPts, clipPts) {
		return splitVec3(subjPts)
	}
	if allInside(clipPts, subjPts) {
		return splitVec3(clipPts)
	}
	return nil, nil, nil, nil
}

func toVec3Slice(x, y, z []float64) []Vec3d {
	pts := make([]Vec3d, len(x))
	for i := range x {
		pts[i] = Vec3d{x[i], y[i], z[i]}
	}
	return pts
}

func splitVec3(pts []Vec3d) (x, y, z []float64, err error) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	z = make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i], z[i] = p.x, p.y, p.z
	}
	return x, y, z, nil
}

func dupIntersection(existing []recordedIntersection, pt Vec3d) bool {
	for _, e := range existing {
		if samePoint(e.pt, pt) {
			return true
		}
	}
	return false
}

// recordEdgeHit files an intersection found on the edge (from -> to) of one
// polygon. u==0/1 snaps the existing endpoint rather than inserting a new
// node, matching the original's roundoff-elimination behavior.
func recordEdgeHit(edges map[int][]edgeCrossing, snap map[int]recordedIntersection, from, to int, u, uOther float64, inbound int, pt Vec3d) {
	switch u {
	case 0:
		snap[from] = recordedIntersection{pt: pt, u1: u, u2: uOther, inbound: inbound}
	case 1:
		snap[to] = recordedIntersection{pt: pt, u1: u, u2: uOther, inbound: inbound}
	default:
		edges[from] = append(edges[from], edgeCrossing{from: from, u: u, uOther: uOther, inbound: inbound, pt: pt})
	}
}

// buildAugmentedList interleaves a polygon's original vertices with any
// interior edge crossings recorded against it, snapping endpoints that
// coincide with a crossing, and computing each original vertex's isInside
// flag against the other polygon.
func buildAugmentedList(pts, otherPts []Vec3d, edges map[int][]edgeCrossing, snap map[int]recordedIntersection) *vertexList {
	n := len(pts)
	list := newVertexList(n + 2*len(edges))

	for i := 0; i < n; i++ {
		list.addEnd(pts[i])
		node := list.at(list.length() - 1)
		node.isInside = insidePolygon(pts[i], otherPts)
		if ri, ok := snap[i]; ok {
			node.intersect = 2
			node.u = ri.u1
			node.uClip = ri.u2
			node.inbound = ri.inbound
			node.pt = ri.pt
		}

		crossings := edges[i]
		sortEdgeCrossings(crossings)
		for _, c := range crossings {
			list.nodes = append(list.nodes, vertexNode{
				pt:        c.pt,
				intersect: 1,
				u:         c.u,
				uClip:     c.uOther,
				inbound:   c.inbound,
			})
		}
	}
	return list
}

func sortEdgeCrossings(c []edgeCrossing) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].u < c[j-1].u; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}

// traverse walks the Weiler-Atherton loop starting at the intersection
// point "start" (present in both subjList and clipList), switching lists at
// every intersection node until it returns to start. ok is false when no
// closed loop of >= 3 vertices could be formed and the caller should fall
// back to the full-containment test instead of treating it as an error.
func traverse(subjList, clipList *vertexList, start Vec3d, nintersect int) ([]Vec3d, bool, error) {
	curList := subjList
	onSubj := true
	pos := curList.findByCoord(start)
	if pos < 0 {
		return nil, false, ErrDegenerateTraversal
	}

	out := []Vec3d{start}
	bound := subjList.length() + clipList.length() + 2*nintersect + 4

	for iter := 0; iter < bound; iter++ {
		pos = (pos + 1) % curList.length()
		node := curList.at(pos)

		if node.intersect != 0 {
			if samePoint(node.pt, start) {
				if len(out) < 3 {
					return nil, false, nil
				}
				return out, true, nil
			}
			out = append(out, node.pt)
			if onSubj {
				curList = clipList
			} else {
				curList = subjList
			}
			onSubj = !onSubj
			pos = curList.findByCoord(node.pt)
			if pos < 0 {
				return nil, false, ErrDegenerateTraversal
			}
			continue
		}

		out = append(out, node.pt)
	}

	return nil, false, ErrDegenerateTraversal
}

// allInside reports whether every point of a lies inside polygon b or on
// its boundary (within EPSLN10, as insidePolygon tests).
func allInside(a, b []Vec3d) bool {
	for _, p := range a {
		if !insidePolygon(p, b) {
			return false
		}
	}
	return true
}
