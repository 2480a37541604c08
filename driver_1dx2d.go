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

// Create1Dx2DOrder1 enumerates exchange cells between a rectilinear source
// grid (1-D lon/lat bounds, e.g. an atmosphere grid) and a curvilinear
// target grid. Source cells clip against the target's corners with
// ClipRect, since a rectilinear cell is always an axis-aligned lon/lat
// rectangle. The name follows the original's create_xgrid_1dx2d_order1, but
// opts.Order also selects create_xgrid_1dx2d_order2's behavior: when
// opts.Order is OrderSecond each emitted cell additionally carries an
// area-weighted centroid, computed with lon_in_avg (the mean longitude of
// the FixLon-normalized target cell) as the poly_ctrlon pivot, exactly as
// the original's order-2 variant does.
//
// When src.Nx == 1 the source area is computed with GridAreaNoAdjust
// instead of GridArea, matching the original's workaround for grids with a
// single zonal point (fix_lon's window logic degenerates when every source
// cell spans a full band of longitude).
func Create1Dx2DOrder1(src RectilinearGrid, dst Grid, mask Mask, opts Options) ([]ExchangeCell, error) {
	areaRatioThresh := opts.AreaRatioThresh
	if areaRatioThresh == 0 {
		areaRatioThresh = AREA_RATIO_THRESH
	}
	maxXGrid := opts.MaxXGrid
	if maxXGrid == 0 {
		maxXGrid = DefaultMaxXGrid
	}

	mesh := src.Mesh()
	var areaIn []float64
	if src.Nx > 1 {
		areaIn = GridArea(mesh.Nx, mesh.Ny, mesh.Lon, mesh.Lat)
	} else {
		areaIn = GridAreaNoAdjust(mesh.Nx, mesh.Ny, mesh.Lon, mesh.Lat)
	}
	areaOut := GridArea(dst.Nx, dst.Ny, dst.Lon, dst.Lat)

	var out []ExchangeCell

	for j1 := 0; j1 < src.Ny; j1++ {
		for i1 := 0; i1 < src.Nx; i1++ {
			if !mask.Active(i1, j1) {
				continue
			}
			weight := mask.At(i1, j1)
			llLon, llLat := src.Lon[i1], src.Lat[j1]
			urLon, urLat := src.Lon[i1+1], src.Lat[j1+1]

			for j2 := 0; j2 < dst.Ny; j2++ {
				for i2 := 0; i2 < dst.Nx; i2++ {
					dLon, dLat := dst.CellCorners(i2, j2)

					allBelow, allAbove := true, true
					for _, y := range dLat {
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

					adjLon, adjLat := FixLon(dLon, dLat, (llLon+urLon)/2)
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
