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
	"github.com/stretchr/testify/require"
)

func TestPolyAreaSmallSquare(t *testing.T) {
	lon := []float64{0, 0.01, 0.01, 0}
	lat := []float64{0, 0, 0.01, 0.01}

	area := PolyAreaNoAdjust(lon, lat)
	flat := 0.01 * 0.01 * RADIUS * RADIUS
	assert.InEpsilon(t, flat, area, 0.01)
}

func TestPolyAreaScalesWithRadiusSquared(t *testing.T) {
	lon := []float64{0, 0.2, 0.2, 0}
	lat := []float64{0, 0, 0.2, 0.2}
	area := PolyAreaDimensionless(lon, lat)
	assert.Greater(t, area, 0.0)
	assert.InEpsilon(t, area*RADIUS*RADIUS, PolyAreaNoAdjust(lon, lat), 1e-9)
}

func TestGreatCircleAreaOctant(t *testing.T) {
	// (1,0,0) -> (0,0,1) -> (0,1,0): clockwise as seen from outside.
	x := []float64{1, 0, 0}
	y := []float64{0, 0, 1}
	z := []float64{0, 1, 0}

	area := GreatCircleArea(x, y, z)
	expect := (math.Pi / 2) * RADIUS * RADIUS
	require.InEpsilon(t, expect, area, 1e-6)
}

func TestGreatCircleAreaNegativeOnReversedWinding(t *testing.T) {
	x := []float64{1, 0, 0}
	y := []float64{0, 1, 0}
	z := []float64{0, 0, 1}

	area := GreatCircleArea(x, y, z)
	assert.Less(t, area, 0.0)
}

func TestInsidePolygonOctant(t *testing.T) {
	poly := []Vec3d{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	inside := Vec3d{0.3, 0.3, 0.3}.normalized()
	assert.True(t, insidePolygon(inside, poly))

	outside := Vec3d{-1, 0, 0}
	assert.False(t, insidePolygon(outside, poly))
}

func TestGridAreaMatchesPolyArea(t *testing.T) {
	nx, ny := 2, 1
	lon := []float64{0, 0.1, 0.2, 0, 0.1, 0.2}
	lat := []float64{0, 0, 0, 0.1, 0.1, 0.1}

	areas := GridArea(nx, ny, lon, lat)
	require.Len(t, areas, 2)

	cLon, cLat := cellCornersLL(nx+1, lon, lat, 0, 0)
	assert.InDelta(t, PolyArea(cLon, cLat), areas[0], 1e-6)
}
