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

// Command xgridgen is a small demonstration driver for the xgrid package.
// It builds two synthetic regular lon/lat grids in memory, overlaps them,
// and prints the resulting exchange cells. Reading real grid files (netCDF
// or otherwise) is outside this package's scope; wire a real loader in
// front of xgrid.GenerateExchangeGrid for production use.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nctools/xgrid"
)

func main() {
	srcNx := flag.Int("src-nx", 4, "source grid longitude cells")
	srcNy := flag.Int("src-ny", 2, "source grid latitude cells")
	dstNx := flag.Int("dst-nx", 6, "target grid longitude cells")
	dstNy := flag.Int("dst-ny", 3, "target grid latitude cells")
	greatCircle := flag.Bool("great-circle", false, "clip with great-circle arcs instead of planar edges")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := logrus.StandardLogger()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	src := regularGrid(*srcNx, *srcNy, -math.Pi, math.Pi, -math.Pi/2, math.Pi/2)
	dst := regularGrid(*dstNx, *dstNy, -math.Pi, math.Pi, -math.Pi/2, math.Pi/2)
	mask := xgrid.Mask{Nx: *srcNx, Ny: *srcNy, Values: ones(*srcNx * *srcNy)}

	opts := xgrid.DefaultOptions()
	opts.Logger = log
	if *greatCircle {
		opts.Method = xgrid.MethodGreatCircle
	}

	cells, err := xgrid.GenerateExchangeGrid(src, dst, mask, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "xgridgen:", err)
		os.Exit(1)
	}

	fmt.Printf("%d exchange cells\n", len(cells))
	for _, c := range cells {
		fmt.Printf("in=(%d,%d) out=(%d,%d) area=%g\n", c.IIn, c.JIn, c.IOut, c.JOut, c.Area)
	}
}

// regularGrid builds an nx-by-ny curvilinear Grid whose corners are evenly
// spaced over [lonMin,lonMax] x [latMin,latMax].
func regularGrid(nx, ny int, lonMin, lonMax, latMin, latMax float64) xgrid.Grid {
	nxp, nyp := nx+1, ny+1
	lon := make([]float64, nxp*nyp)
	lat := make([]float64, nxp*nyp)
	for j := 0; j < nyp; j++ {
		for i := 0; i < nxp; i++ {
			lon[j*nxp+i] = lonMin + (lonMax-lonMin)*float64(i)/float64(nx)
			lat[j*nxp+i] = latMin + (latMax-latMin)*float64(j)/float64(ny)
		}
	}
	return xgrid.Grid{Nx: nx, Ny: ny, Lon: lon, Lat: lat}
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
