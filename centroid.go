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

// PolyCtrLat computes the latitude centroid, in radians, of a polygon given
// by its lon/lat vertices: the exact integral of the cell's area-weighted
// latitude along each edge divided by the polygon's area. The result does
// not depend on the polygon's winding; a zero-area polygon yields 0.
func PolyCtrLat(lon, lat []float64) float64 {
	n := len(lon)
	ctrlat := 0.0
	area := 0.0
	for i := 0; i < n; i++ {
		ip := (i + 1) % n
		dx := lon[ip] - lon[i]
		if dx == 0 {
			continue
		}
		dx = wrapLonDelta(dx)

		lat1 := lat[ip]
		lat2 := lat[i]
		dy := lat2 - lat1
		hdy := dy * 0.5
		avgY := (lat1 + lat2) * 0.5

		if math.Abs(hdy) < SmallValue {
			ctrlat -= dx * (2*math.Cos(avgY) + lat2*math.Sin(avgY) - math.Cos(lat1))
			area -= dx * math.Sin(avgY)
		} else {
			ctrlat -= dx * ((math.Sin(hdy)/hdy)*(2*math.Cos(avgY)+lat2*math.Sin(avgY)) - math.Cos(lat1))
			area -= dx * math.Sin(avgY) * math.Sin(hdy) / hdy
		}
	}
	if area == 0 {
		return 0
	}
	return ctrlat / area
}

// PolyCtrLon computes the longitude centroid, in radians, of a polygon given
// by its lon/lat vertices, with antimeridian-safe handling around the pivot
// meridian clon: the mean of each point's longitude offset from clon,
// weighted by cos^2(lat), added back to clon. The result does not depend on
// the polygon's winding; a zero-area polygon yields clon.
func PolyCtrLon(lon, lat []float64, clon float64) float64 {
	n := len(lon)
	ctrlon := 0.0
	weight := 0.0
	for i := 0; i < n; i++ {
		ip := (i + 1) % n
		ctrlon += ctrLonEdge(lon[ip], lon[i], lat[ip], lat[i], clon)
		f1 := 0.5 * (math.Cos(lat[ip])*math.Sin(lat[ip]) + lat[ip])
		f2 := 0.5 * (math.Cos(lat[i])*math.Sin(lat[i]) + lat[i])
		weight -= wrapLonDelta(lon[ip]-lon[i]) * (f1 + f2) / 2
	}
	if weight == 0 {
		return clon
	}
	return clon + ctrlon/weight
}

// ctrLonEdge is the per-edge contribution shared by PolyCtrLon and
// BoxCentroidLon.
func ctrLonEdge(phi1, phi2, lat1, lat2, clon float64) float64 {
	dphi := phi1 - phi2
	if dphi == 0 {
		return 0
	}

	f1 := 0.5 * (math.Cos(lat1)*math.Sin(lat1) + lat1)
	f2 := 0.5 * (math.Cos(lat2)*math.Sin(lat2) + lat2)

	dphi = wrapLonDelta(dphi)
	dphi1 := wrapLonDelta(phi1 - clon)
	dphi2 := wrapLonDelta(phi2 - clon)

	if math.Abs(dphi2-dphi1) < M_PI {
		return -dphi * (dphi1*f1 + dphi2*f2) / 2.0
	}

	fac := M_PI
	if dphi1 <= 0 {
		fac = -M_PI
	}
	fint := f1 + (f2-f1)*(fac-dphi1)/math.Abs(dphi)
	return -(0.5*dphi1*(dphi1-fac)*f1 - 0.5*dphi2*(dphi2+fac)*f2 + 0.5*fac*(dphi1+dphi2)*fint)
}

// BoxCentroidLat computes the latitude centroid, in radians, of an
// axis-aligned lon/lat box (no clipping involved), used for diagnostics on
// an un-clipped source or target cell. A zero-area box yields 0.
func BoxCentroidLat(llLon, llLat, urLon, urLat float64) float64 {
	dphi := wrapLonDelta(urLon - llLon)
	ctrlat := dphi * (math.Cos(urLat) + urLat*math.Sin(urLat) - (math.Cos(llLat) + llLat*math.Sin(llLat)))
	area := dphi * (math.Sin(urLat) - math.Sin(llLat))
	if area == 0 {
		return 0
	}
	return ctrlat / area
}

// BoxCentroidLon computes the longitude centroid, in radians, of an
// axis-aligned lon/lat box (no clipping involved), pivoted on clon as in
// PolyCtrLon. A zero-area box yields clon.
func BoxCentroidLon(llLon, llLat, urLon, urLat, clon float64) float64 {
	ctrlon := ctrLonEdge(urLon, llLon, llLat, llLat, clon)
	ctrlon += ctrLonEdge(llLon, urLon, urLat, urLat, clon)
	fUR := 0.5 * (math.Cos(urLat)*math.Sin(urLat) + urLat)
	fLL := 0.5 * (math.Cos(llLat)*math.Sin(llLat) + llLat)
	weight := wrapLonDelta(urLon-llLon) * (fUR - fLL)
	if weight == 0 {
		return clon
	}
	return clon + ctrlon/weight
}
