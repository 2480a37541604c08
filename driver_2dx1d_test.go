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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate2Dx1DOrder1FullOverlap(t *testing.T) {
	src := Grid{
		Nx:  1,
		Ny:  1,
		Lon: []float64{0, 0.2, 0, 0.2},
		Lat: []float64{0, 0, 0.1, 0.1},
	}
	dst := RectilinearGrid{Nx: 1, Ny: 1, Lon: []float64{0, 0.2}, Lat: []float64{0, 0.1}}
	mask := allOnesMask(1, 1)

	cells, err := Create2Dx1DOrder1(src, dst, mask, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, cells, 1)

	c := cells[0]
	assert.Equal(t, 0, c.IIn)
	assert.Equal(t, 0, c.JIn)
	assert.Equal(t, 0, c.IOut)
	assert.Equal(t, 0, c.JOut)

	expect := GridArea(1, 1, src.Lon, src.Lat)[0]
	assert.InDelta(t, expect, c.Area, expect*1e-9)
}

func TestCreate2Dx1DOrder1ConservesAreaUnderSplit(t *testing.T) {
	src := Grid{
		Nx:  1,
		Ny:  1,
		Lon: []float64{0, 0.2, 0, 0.2},
		Lat: []float64{0, 0, 0.1, 0.1},
	}
	dst := RectilinearGrid{Nx: 2, Ny: 1, Lon: []float64{0, 0.1, 0.2}, Lat: []float64{0, 0.1}}
	mask := allOnesMask(1, 1)

	cells, err := Create2Dx1DOrder1(src, dst, mask, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, cells, 2)

	total := 0.0
	for _, c := range cells {
		total += c.Area
	}
	expect := GridArea(1, 1, src.Lon, src.Lat)[0]
	assert.InDelta(t, expect, total, expect*1e-9)
}

func TestCreate2Dx1DOrder1SkipsInactiveSourceCells(t *testing.T) {
	src := Grid{
		Nx:  1,
		Ny:  1,
		Lon: []float64{0, 0.2, 0, 0.2},
		Lat: []float64{0, 0, 0.1, 0.1},
	}
	dst := RectilinearGrid{Nx: 1, Ny: 1, Lon: []float64{0, 0.2}, Lat: []float64{0, 0.1}}
	mask := Mask{Nx: 1, Ny: 1, Values: []float64{0}}

	cells, err := Create2Dx1DOrder1(src, dst, mask, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestCreate2Dx1DOrder1DisjointIsEmpty(t *testing.T) {
	src := Grid{
		Nx:  1,
		Ny:  1,
		Lon: []float64{0, 0.2, 0, 0.2},
		Lat: []float64{0, 0, 0.1, 0.1},
	}
	dst := RectilinearGrid{Nx: 1, Ny: 1, Lon: []float64{3, 3.2}, Lat: []float64{0, 0.1}}
	mask := allOnesMask(1, 1)

	cells, err := Create2Dx1DOrder1(src, dst, mask, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestCreate2Dx1DOrder1CentroidInBoundsWhenOrderSecond(t *testing.T) {
	src := Grid{
		Nx:  1,
		Ny:  1,
		Lon: []float64{0, 0.2, 0, 0.2},
		Lat: []float64{0, 0, 0.1, 0.1},
	}
	dst := RectilinearGrid{Nx: 1, Ny: 1, Lon: []float64{0, 0.2}, Lat: []float64{0, 0.1}}
	mask := allOnesMask(1, 1)

	opts := DefaultOptions()
	opts.Order = OrderSecond
	cells, err := Create2Dx1DOrder1(src, dst, mask, opts)
	require.NoError(t, err)
	require.Len(t, cells, 1)

	c := cells[0]
	assert.GreaterOrEqual(t, c.CLon, 0.0)
	assert.LessOrEqual(t, c.CLon, 0.2)
	assert.GreaterOrEqual(t, c.CLat, 0.0)
	assert.LessOrEqual(t, c.CLat, 0.1)
}

// TestCreate1Dx2DOrder1AndCreate2Dx1DOrder1AgreeOnTotalArea checks the two
// mirror-image drivers against the same pair of grids with source/target
// swapped: the enumerated overlap area should be identical either way,
// since both reduce to clipping the same curvilinear cell against the same
// rectangle.
func TestCreate1Dx2DOrder1AndCreate2Dx1DOrder1AgreeOnTotalArea(t *testing.T) {
	rect := RectilinearGrid{Nx: 1, Ny: 1, Lon: []float64{0, 0.2}, Lat: []float64{0, 0.1}}
	curvi := Grid{
		Nx:  2,
		Ny:  1,
		Lon: []float64{0, 0.1, 0.2, 0, 0.1, 0.2},
		Lat: []float64{0, 0, 0, 0.1, 0.1, 0.1},
	}

	oneByOneMask := allOnesMask(1, 1)
	fromRect, err := Create1Dx2DOrder1(rect, curvi, oneByOneMask, DefaultOptions())
	require.NoError(t, err)

	twoByOneMask := allOnesMask(2, 1)
	fromCurvi, err := Create2Dx1DOrder1(curvi, rect, twoByOneMask, DefaultOptions())
	require.NoError(t, err)

	totalRect := 0.0
	for _, c := range fromRect {
		totalRect += c.Area
	}
	totalCurvi := 0.0
	for _, c := range fromCurvi {
		totalCurvi += c.Area
	}
	assert.InDelta(t, totalRect, totalCurvi, totalRect*1e-9)
}
