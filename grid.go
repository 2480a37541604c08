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

// Grid is an nx-by-ny mesh of quadrilateral cells. Corner coordinates are an
// (nx+1)-by-(ny+1) array of longitude/latitude radians, flat-indexed
// k = j*(nx+1) + i.
type Grid struct {
	Nx, Ny int
	Lon    []float64
	Lat    []float64
}

// Mask is an nx-by-ny array of weights in [0,1]; a source cell participates
// in enumeration iff its mask value exceeds MASK_THRESH.
type Mask struct {
	Nx, Ny int
	Values []float64
}

// At returns the mask weight at (i, j).
func (m Mask) At(i, j int) float64 {
	return m.Values[j*m.Nx+i]
}

// Active reports whether the source cell (i, j) participates in enumeration.
func (m Mask) Active(i, j int) bool {
	return m.At(i, j) > MASK_THRESH
}

// cellCorners gathers the flat corner indices for cell (i, j) of an
// nxp-wide corner array, in the clockwise-from-outside-the-sphere order
// n0=(j,i), n1=(j+1,i), n2=(j+1,i+1), n3=(j,i+1).
func cellCorners(nxp, i, j int) [4]int {
	return [4]int{
		j*nxp + i,
		(j+1)*nxp + i,
		(j+1)*nxp + i + 1,
		j*nxp + i + 1,
	}
}

// cellCornersLL gathers a single cell's lon/lat corners.
func cellCornersLL(nxp int, lon, lat []float64, i, j int) (cLon, cLat []float64) {
	idx := cellCorners(nxp, i, j)
	cLon = make([]float64, 4)
	cLat = make([]float64, 4)
	for k, n := range idx {
		cLon[k] = lon[n]
		cLat[k] = lat[n]
	}
	return cLon, cLat
}

// cellCornersXYZ gathers a single cell's cartesian corners.
func cellCornersXYZ(nxp int, x, y, z []float64, i, j int) (cx, cy, cz []float64) {
	idx := cellCorners(nxp, i, j)
	cx = make([]float64, 4)
	cy = make([]float64, 4)
	cz = make([]float64, 4)
	for k, n := range idx {
		cx[k] = x[n]
		cy[k] = y[n]
		cz[k] = z[n]
	}
	return cx, cy, cz
}

// CellCorners returns cell (i, j)'s four lon/lat corners from g, in the
// n0=(j,i), n1=(j+1,i), n2=(j+1,i+1), n3=(j,i+1) winding.
func (g Grid) CellCorners(i, j int) (lon, lat []float64) {
	return cellCornersLL(g.Nx+1, g.Lon, g.Lat, i, j)
}

// RectilinearGrid is a grid given by 1-D longitude and latitude bounds (Lon
// has Nx+1 entries, Lat has Ny+1 entries) rather than a full (Nx+1)x(Ny+1)
// curvilinear mesh. It stands in for the source grid in Create1Dx2DOrder1
// ("1dx2d") and for the target grid in Create2Dx1DOrder1 ("2dx1d").
type RectilinearGrid struct {
	Nx, Ny int
	Lon    []float64
	Lat    []float64
}

// Mesh expands g into an equivalent curvilinear Grid by broadcasting its
// 1-D bounds across the other axis, the same tmpx/tmpy construction the
// original builds before calling get_grid_area on a 1-D source grid.
func (g RectilinearGrid) Mesh() Grid {
	nxp, nyp := g.Nx+1, g.Ny+1
	lon := make([]float64, nxp*nyp)
	lat := make([]float64, nxp*nyp)
	for j := 0; j < nyp; j++ {
		for i := 0; i < nxp; i++ {
			lon[j*nxp+i] = g.Lon[i]
			lat[j*nxp+i] = g.Lat[j]
		}
	}
	return Grid{Nx: g.Nx, Ny: g.Ny, Lon: lon, Lat: lat}
}

// ExchangeCell is one emitted overlap between a source cell and a target
// cell: its indices, overlap area, and (order-2 only) area-weighted
// centroid.
type ExchangeCell struct {
	IIn, JIn   int
	IOut, JOut int
	Area       float64
	CLon, CLat float64
}
