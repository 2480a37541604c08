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

// vertexNode is one vertex of a spherical polygon being clipped. It plays
// the role of the original C implementation's singly-linked Node struct;
// here the "arena" is simply the backing array of a vertexList, and a
// node's position in that slice is its handle. rewindList's job — resetting
// the pool between invocations — is just allocating a fresh vertexList per
// call, which additionally removes the single-threaded restriction the
// original's process-global pool imposed.
type vertexNode struct {
	pt Vec3d

	isInside bool

	// intersect is 0 for an ordinary vertex, 1 for a vertex inserted at an
	// edge crossing, 2 for a vertex that coincides with an original corner
	// of this polygon but was also identified as an intersection.
	intersect int

	u       float64 // arc parameter along this polygon's edge
	uClip   float64 // arc parameter along the other polygon's edge
	inbound int     // 0 undetermined, 1 = subject exits clip here, 2 = subject enters clip here
}

// vertexList is a circular list of polygon vertices backed by a plain
// slice. Positions wrap modulo the slice length, which stands in for the
// original's Next pointer chasing back to the head.
type vertexList struct {
	nodes []vertexNode
}

func newVertexList(cap int) *vertexList {
	return &vertexList{nodes: make([]vertexNode, 0, cap)}
}

func (l *vertexList) length() int { return len(l.nodes) }

// at returns the node at logical position i, wrapping circularly.
func (l *vertexList) at(i int) *vertexNode {
	n := len(l.nodes)
	i = ((i % n) + n) % n
	return &l.nodes[i]
}

func (l *vertexList) addEnd(p Vec3d) {
	l.nodes = append(l.nodes, vertexNode{pt: p})
}

// insertAfter inserts a new node immediately after logical position i.
func (l *vertexList) insertAfter(i int, n vertexNode) {
	n2 := len(l.nodes)
	i = ((i % n2) + n2) % n2
	l.nodes = append(l.nodes, vertexNode{})
	copy(l.nodes[i+2:], l.nodes[i+1:n2])
	l.nodes[i+1] = n
}

// findByCoord returns the logical position of the node matching p, or -1.
func (l *vertexList) findByCoord(p Vec3d) int {
	for i := range l.nodes {
		if samePoint(l.nodes[i].pt, p) {
			return i
		}
	}
	return -1
}

// coords returns the list's vertices as parallel x/y/z slices, in order.
func (l *vertexList) coords() (x, y, z []float64) {
	x = make([]float64, len(l.nodes))
	y = make([]float64, len(l.nodes))
	z = make([]float64, len(l.nodes))
	for i, n := range l.nodes {
		x[i], y[i], z[i] = n.pt.x, n.pt.y, n.pt.z
	}
	return x, y, z
}
