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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBboxesDisjointLonPlain(t *testing.T) {
	a := BBox{west: 0, east: 1}
	b := BBox{west: 2, east: 3}
	assert.True(t, bboxesDisjointLon(a, b))

	c := BBox{west: 0.5, east: 1.5}
	assert.False(t, bboxesDisjointLon(a, c))
}

func TestBboxesDisjointLonTransmeridianNeverDisjoint(t *testing.T) {
	a := BBox{west: 3, east: 1} // wraps across the antimeridian
	b := BBox{west: 1.5, east: 1.6}
	assert.False(t, bboxesDisjointLon(a, b))
}

func TestBboxesDisjointLat(t *testing.T) {
	a := BBox{south: 0, north: 0.1}
	b := BBox{south: 0.2, north: 0.3}
	assert.True(t, bboxesDisjointLat(a, b))

	c := BBox{south: 0.05, north: 0.15}
	assert.False(t, bboxesDisjointLat(a, c))
}

func TestLonLatBBoxEnvelope(t *testing.T) {
	lon := []float64{0, 0.3, 0.1, -0.2}
	lat := []float64{0.5, -0.1, 0.2, 0.4}
	box := lonLatBBox(lon, lat)

	assert.Equal(t, 0.3, box.east)
	assert.Equal(t, -0.2, box.west)
	assert.Equal(t, 0.5, box.north)
	assert.Equal(t, -0.1, box.south)
}

func TestXYZBoxDisjoint(t *testing.T) {
	x1, y1, z1 := latLonSliceToXYZ([]float64{0, 0.1, 0.1, 0}, []float64{0, 0, 0.1, 0.1})
	x2, y2, z2 := latLonSliceToXYZ([]float64{3, 3.1, 3.1, 3}, []float64{0, 0, 0.1, 0.1})

	box1 := xyzBoxOf(x1, y1, z1)
	box2 := xyzBoxOf(x2, y2, z2)
	assert.True(t, box1.disjoint(box2, 1e-10))
}

func TestXYZBoxNotDisjointWhenOverlapping(t *testing.T) {
	x1, y1, z1 := latLonSliceToXYZ([]float64{0, 0.2, 0.2, 0}, []float64{0, 0, 0.2, 0.2})
	x2, y2, z2 := latLonSliceToXYZ([]float64{0.1, 0.3, 0.3, 0.1}, []float64{0.1, 0.1, 0.3, 0.3})

	box1 := xyzBoxOf(x1, y1, z1)
	box2 := xyzBoxOf(x2, y2, z2)
	assert.False(t, box1.disjoint(box2, 1e-10))
}

func TestGridBoxRadiusIsDiagonalForAPlanarSquare(t *testing.T) {
	// Unit square in the x-y plane, embedded as if it were a box of points:
	// the radius (max pairwise distance) is the diagonal.
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	z := []float64{0, 0, 0, 0}

	got := GridBoxRadius(x, y, z)
	assert.InDelta(t, math.Sqrt2, got, 1e-12)
}

func TestDistBetweenBoxesMatchesFarthestVertexPair(t *testing.T) {
	x1 := []float64{0, 1, 1, 0}
	y1 := []float64{0, 0, 1, 1}
	z1 := []float64{0, 0, 0, 0}
	x2 := []float64{0, 0, 0, 0}
	y2 := []float64{0, 0, 0, 0}
	z2 := []float64{0, 0, 0, 0}

	// Box 2 is degenerate (all at the origin, which is also box 1's first
	// vertex): the max pairwise distance is whichever box-1 vertex is
	// farthest from the origin, i.e. the diagonal.
	got := DistBetweenBoxes(x1, y1, z1, x2, y2, z2)
	assert.InDelta(t, math.Sqrt2, got, 1e-12)
}

func TestBoxRadiusPrefilterSoundnessOnDisjointBoxes(t *testing.T) {
	x1, y1, z1 := latLonSliceToXYZ([]float64{0, 0.1, 0.1, 0}, []float64{0, 0, 0.1, 0.1})
	x2, y2, z2 := latLonSliceToXYZ([]float64{3, 3.1, 3.1, 3}, []float64{0, 0, 0.1, 0.1})

	sep := DistBetweenBoxes(x1, y1, z1, x2, y2, z2)
	r1 := GridBoxRadius(x1, y1, z1)
	r2 := GridBoxRadius(x2, y2, z2)
	assert.Greater(t, sep, r1+r2)
}
