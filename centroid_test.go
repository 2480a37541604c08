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
)

func TestBoxCentroidLatSymmetricAboutEquator(t *testing.T) {
	got := BoxCentroidLat(0, -0.2, 0.1, 0.2)
	assert.InDelta(t, 0, got, 1e-9)
}

func TestBoxCentroidLatAsymmetricIsNonzero(t *testing.T) {
	got := BoxCentroidLat(0, 0, 0.1, 0.4)
	assert.Greater(t, got, 0.0)
}

func TestPolyCtrLatSymmetricSquare(t *testing.T) {
	lon := []float64{-0.05, 0.05, 0.05, -0.05}
	lat := []float64{-0.05, -0.05, 0.05, 0.05}
	got := PolyCtrLat(lon, lat)
	assert.InDelta(t, 0, got, 1e-6)
}

func TestPolyCtrLonSymmetricSquare(t *testing.T) {
	lon := []float64{-0.05, 0.05, 0.05, -0.05}
	lat := []float64{-0.05, -0.05, 0.05, 0.05}
	got := PolyCtrLon(lon, lat, 0)
	assert.InDelta(t, 0, got, 1e-6)
}
