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

// FixLon rotates every longitude in lon into the half-open window
// [pivot-pi, pivot+pi) by adding or subtracting 2*pi, returning the
// possibly-longer lon/lat slices. A longitude of exactly pivot+pi maps to
// pivot-pi; the window's upper end is not included.
//
// If the rotated polygon touches a pole — detected as two consecutive
// vertices at +-pi/2 latitude — a synthetic vertex is inserted at the pole
// with longitude equal to the mean of its neighbors, so the polygon remains
// well-formed for the planar clipper. In that case the returned slices have
// one more vertex than the input; otherwise they have the same count.
func FixLon(lon, lat []float64, pivot float64) (outLon, outLat []float64) {
	n := len(lon)
	outLon = make([]float64, n)
	outLat = make([]float64, n)
	copy(outLat, lat)

	for i, l := range lon {
		x := l
		for x < pivot-M_PI {
			x += M_2PI
		}
		for x >= pivot+M_PI {
			x -= M_2PI
		}
		outLon[i] = x
	}

	for i := 0; i < n; i++ {
		ip := (i + 1) % n
		if touchesPole(outLat[i]) && touchesPole(outLat[ip]) && sameSign(outLat[i], outLat[ip]) {
			poleLon := (outLon[i] + outLon[ip]) / 2
			outLon = insertAfter(outLon, i, poleLon)
			outLat = insertAfter(outLat, i, outLat[i])
			return outLon, outLat
		}
	}

	return outLon, outLat
}

func touchesPole(lat float64) bool {
	return math.Abs(math.Abs(lat)-M_PI_2) < EPSLN10
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

func insertAfter(s []float64, i int, v float64) []float64 {
	out := make([]float64, 0, len(s)+1)
	out = append(out, s[:i+1]...)
	out = append(out, v)
	out = append(out, s[i+1:]...)
	return out
}

// wrapLonDelta wraps a longitude difference into [-pi, pi], the
// normalization every area and centroid integral applies before treating a
// difference as the "short way around" angle.
func wrapLonDelta(dlon float64) float64 {
	if dlon > M_PI {
		return dlon - M_2PI
	}
	if dlon < -M_PI {
		return dlon + M_2PI
	}
	return dlon
}
