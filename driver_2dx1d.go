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

import "fmt"

// Create2Dx1DOrder1 enumerates exchange cells between a curvilinear source
// grid and a rectilinear target grid (1-D lon/lat bounds, e.g. an ocean
// model's regridding target) — the mirror image of Create1Dx2DOrder1, with
// the mask living on the curvilinear source grid as in the original's
// create_xgrid_2dx1d_order1. The outer loop runs over target cells and the
// inner loop over source cells, the reverse of Create1Dx2DOrder1's nesting,
// matching the original exactly rather than "fixing" the asymmetry.
//
// opts.Order also selects create_xgrid_2dx1d_order2's behavior: when
// opts.Order is OrderSecond each emitted cell additionally carries an
// area-weighted centroid, using lon_in_avg (the mean longitude of the
// FixLon-normalized source cell) as the poly_ctrlon pivot.
func Create2Dx1DOrder1(src Grid, dst RectilinearGrid, mask Mask, opts Options) ([]ExchangeCell, error) {
	areaRatioThresh := opts.AreaRatioThresh
	if areaRatioThresh == 0 {
		areaRatioThresh = AREA_RATIO_THRESH
	}
	maxXGrid := opts.MaxXGrid
	if maxXGrid == 0 {
		maxXGrid = DefaultMaxXGrid
	}

	areaIn := GridArea(src.Nx, src.Ny, src.Lon, src.Lat)
	mesh := dst.Mesh()
	areaOut := GridArea(mesh.Nx, mesh.Ny, mesh.Lon, mesh.Lat)

	var out []ExchangeCell

	for j2 := 0; j2 < dst.Ny; j2++ {
		for i2 := 0; i2 < dst.Nx; i2++ {
			llLon, llLat := dst.Lon[i2], dst.Lat[j2]
			urLon, urLat := dst.Lon[i2+1], dst.Lat[j2+1]

			for j1 := 0; j1 < src.Ny; j1++ {
				for i1 := 0; i1 < src.Nx; i1++ {
					if !mask.Active(i1, j1) {
						continue
					}
					weight := mask.At(i1, j1)
					sLon, sLat := src.CellCorners(i1, j1)

					allBelow, allAbove := true, true
					for _, y := range sLat {
						if y > llLat {
							allBelow = false
						}
						if y < urLat {
							allAbove = false
						}
					}
					if allBelow || allAbove {
						continue
					}

					adjLon, adjLat := FixLon(sLon, sLat, (llLon+urLon)/2)
					outLon, outLat := ClipRect(adjLon, adjLat, llLon, llLat, urLon, urLat)
					if len(outLon) == 0 {
						continue
					}
					if len(outLon) > MV {
						return nil, fmt.Errorf("xgrid: cell (i_in=%d,j_in=%d) x (i_out=%d,j_out=%d): %w", i1, j1, i2, j2, ErrVertexOverflow)
					}

					area := PolyAreaNoAdjust(outLon, outLat) * weight
					minArea := areaIn[j1*src.Nx+i1]
					if a := areaOut[j2*dst.Nx+i2]; a < minArea {
						minArea = a
					}
					if minArea == 0 || area/minArea <= areaRatioThresh {
						continue
					}

					cell := ExchangeCell{IIn: i1, JIn: j1, IOut: i2, JOut: j2, Area: area}
					if opts.Order == OrderSecond {
						lonInAvg := avg(adjLon)
						cell.CLon = PolyCtrLon(outLon, outLat, lonInAvg)
						cell.CLat = PolyCtrLat(outLon, outLat)
					}

					out = append(out, cell)
					if len(out) > maxXGrid {
						return nil, fmt.Errorf("xgrid: rectilinear enumeration: %w", ErrCapacityExceeded)
					}
				}
			}
		}
	}

	return out, nil
}
