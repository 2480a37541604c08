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

func TestFixLonNoOpWhenAlreadyInWindow(t *testing.T) {
	lon := []float64{0, 0.1, 0.1, 0}
	lat := []float64{0, 0, 0.1, 0.1}

	outLon, outLat := FixLon(lon, lat, M_PI)
	assert.Equal(t, lon, outLon)
	assert.Equal(t, lat, outLat)
}

func TestFixLonWrapsIntoWindow(t *testing.T) {
	lon := []float64{-M_PI - 0.1, -M_PI + 0.1, -M_PI + 0.1, -M_PI - 0.1}
	lat := []float64{0, 0, 0.1, 0.1}

	outLon, _ := FixLon(lon, lat, M_PI)
	for _, x := range outLon {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, M_2PI)
	}
}

func TestFixLonInsertsPoleVertex(t *testing.T) {
	lon := []float64{0, M_PI_2, M_PI_2, M_PI}
	lat := []float64{M_PI_2 - 1e-12, M_PI_2, M_PI_2, M_PI_2 - 1e-12}

	outLon, outLat := FixLon(lon, lat, M_PI)
	require.Len(t, outLon, len(lon)+1)
	require.Len(t, outLat, len(lat)+1)

	found := false
	for _, l := range outLat {
		if touchesPole(l) {
			found = true
		}
	}
	assert.True(t, found)
}
