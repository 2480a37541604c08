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
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Method selects the edge representation used to intersect cells.
type Method int

const (
	// MethodPlanar treats cell edges as straight lines on the lon/lat
	// plane (clip_2dx2d in the original).
	MethodPlanar Method = iota
	// MethodGreatCircle treats cell edges as great-circle arcs on the
	// sphere (clip_2dx2d_great_circle in the original).
	MethodGreatCircle
)

// Order selects whether the emitted exchange cells carry an area-weighted
// centroid in addition to area.
type Order int

const (
	// OrderFirst computes area only.
	OrderFirst Order = iota
	// OrderSecond additionally computes each exchange cell's centroid.
	// Only supported together with MethodPlanar: the great-circle
	// centroid integral is left unimplemented, matching the original's
	// xgrid_clon/xgrid_clat being hard-coded to zero pending a
	// "will be developed very soon" note that was never followed up.
	OrderSecond
)

// Options configures one exchange-grid enumeration run.
type Options struct {
	Method Method
	Order  Order

	// AreaRatioThresh rejects an overlap whose area, relative to the
	// smaller of its two parent cells, falls at or below this fraction.
	AreaRatioThresh float64

	// RangeCheckCriteria pads the cartesian bounding-box reject test used
	// by MethodGreatCircle (RANGE_CHECK_CRITERIA in the original).
	RangeCheckCriteria float64

	// MaxXGrid bounds the total number of exchange cells a run may emit.
	MaxXGrid int

	// Parallelism is the number of concurrent workers partitioning the
	// source grid's rows. Zero means runtime.GOMAXPROCS(0).
	Parallelism int

	// UseBoxRadiusPrefilter rejects a MethodGreatCircle cell pair using
	// GridBoxRadius/DistBetweenBoxes (cell-to-cell vertex distance vs. the
	// sum of each cell's bounding radius) before the full XYZBox disjoint
	// test ClipGreatCircle otherwise runs unconditionally. Off by default
	// since it only pays off on grids where most candidate pairs are far
	// apart (see DESIGN.md).
	UseBoxRadiusPrefilter bool

	Logger logrus.FieldLogger
}

// DefaultOptions returns an Options with the package's default thresholds
// and one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Method:             MethodPlanar,
		Order:              OrderFirst,
		AreaRatioThresh:    AREA_RATIO_THRESH,
		RangeCheckCriteria: DefaultRangeCheckCriteria,
		MaxXGrid:           DefaultMaxXGrid,
		Logger:             logrus.StandardLogger(),
	}
}

// MaxXGrid returns the exchange-cell capacity a run with the zero Options
// would be bounded by, mirroring the original's get_maxxgrid accessor.
func MaxXGrid() int { return DefaultMaxXGrid }

// sourceCellInfo is a source cell's precomputed, lon-normalized corners and
// bounding box, built once per cell and reused against every candidate
// target cell.
type sourceCellInfo struct {
	lon, lat       []float64
	latMin, latMax float64
	lonMin, lonMax float64
	lonAvg         float64
	x, y, z        []float64 // cartesian corners, MethodGreatCircle only
}

// targetCellInfo is the output-grid analog of sourceCellInfo, precomputed
// once for the whole target grid before the source grid is scanned — the
// same precompute-then-scan split as the original's first OpenMP loop over
// nx2*ny2 followed by its second loop over source cells.
type targetCellInfo struct {
	lon, lat       []float64
	latMin, latMax float64
	lonMin, lonMax float64
	lonAvg         float64
	x, y, z        []float64
}

// GenerateExchangeGrid enumerates every overlapping (source cell, target
// cell) pair between src and dst whose area-weighted overlap exceeds
// opts.AreaRatioThresh, restricted to source cells active in mask. The
// source grid's rows are partitioned across opts.Parallelism workers; each
// worker's results are collected into its own buffer and concatenated in
// row order, so the returned slice's order is independent of scheduling.
func GenerateExchangeGrid(src, dst Grid, mask Mask, opts Options) ([]ExchangeCell, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	areaRatioThresh := opts.AreaRatioThresh
	if areaRatioThresh == 0 {
		areaRatioThresh = AREA_RATIO_THRESH
	}
	maxXGrid := opts.MaxXGrid
	if maxXGrid == 0 {
		maxXGrid = DefaultMaxXGrid
	}
	criteria := opts.RangeCheckCriteria
	if criteria == 0 {
		criteria = DefaultRangeCheckCriteria
	}

	srcAreas := GridArea(src.Nx, src.Ny, src.Lon, src.Lat)
	dstAreas := GridArea(dst.Nx, dst.Ny, dst.Lon, dst.Lat)

	targets := precomputeTargets(dst, opts.Method)

	workers := opts.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > src.Ny {
		workers = src.Ny
	}
	if workers < 1 {
		workers = 1
	}

	log.WithFields(logrus.Fields{
		"src_nx": src.Nx, "src_ny": src.Ny,
		"dst_nx": dst.Nx, "dst_ny": dst.Ny,
		"workers": workers, "method": opts.Method, "order": opts.Order,
	}).Debug("xgrid: starting enumeration")

	rowBlocks := partitionRows(src.Ny, workers)
	results := make([][]ExchangeCell, len(rowBlocks))

	// Each block's staging buffer is capped at MAXXGRID/nthreads.
	blockCap := maxXGrid
	if n := len(rowBlocks); n > 0 {
		blockCap = maxXGrid / n
	}

	var g errgroup.Group
	for b, block := range rowBlocks {
		b, block := b, block
		g.Go(func() error {
			out, err := scanRowBlock(src, dst, mask, block, srcAreas, dstAreas, targets, opts, areaRatioThresh, criteria, blockCap)
			if err != nil {
				return err
			}
			results[b] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total > maxXGrid {
		return nil, ErrCapacityExceeded
	}

	merged := make([]ExchangeCell, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}

	log.WithField("nxgrid", len(merged)).Debug("xgrid: enumeration complete")
	return merged, nil
}

// rowBlock is a contiguous, half-open range of source grid rows [lo, hi).
type rowBlock struct{ lo, hi int }

// partitionRows splits [0, ny) into up to n contiguous blocks, as evenly as
// the original's istart2/iend2 split of the flat target-cell range.
func partitionRows(ny, n int) []rowBlock {
	if n > ny {
		n = ny
	}
	blocks := make([]rowBlock, 0, n)
	left := ny
	pos := 0
	for m := 0; m < n; m++ {
		remaining := n - m
		size := left / remaining
		blocks = append(blocks, rowBlock{lo: pos, hi: pos + size})
		pos += size
		left -= size
	}
	return blocks
}

func precomputeTargets(dst Grid, method Method) []targetCellInfo {
	targets := make([]targetCellInfo, dst.Nx*dst.Ny)
	for j := 0; j < dst.Ny; j++ {
		for i := 0; i < dst.Nx; i++ {
			lon, lat := dst.CellCorners(i, j)
			t := targetCellInfo{}
			t.latMin, t.latMax = minMax(lat)
			adjLon, adjLat := FixLon(lon, lat, M_PI)
			t.lon, t.lat = adjLon, adjLat
			t.lonMin, t.lonMax = minMax(adjLon)
			t.lonAvg = avg(adjLon)

			if method == MethodGreatCircle {
				t.x, t.y, t.z = latLonSliceToXYZ(lon, lat)
			}

			targets[j*dst.Nx+i] = t
		}
	}
	return targets
}

func buildSourceCell(src Grid, i, j int, method Method) sourceCellInfo {
	lon, lat := src.CellCorners(i, j)
	s := sourceCellInfo{}
	s.latMin, s.latMax = minMax(lat)
	adjLon, adjLat := FixLon(lon, lat, M_PI)
	s.lon, s.lat = adjLon, adjLat
	s.lonMin, s.lonMax = minMax(adjLon)
	s.lonAvg = avg(adjLon)

	if method == MethodGreatCircle {
		s.x, s.y, s.z = latLonSliceToXYZ(lon, lat)
	}
	return s
}

func scanRowBlock(src, dst Grid, mask Mask, block rowBlock, srcAreas, dstAreas []float64, targets []targetCellInfo, opts Options, areaRatioThresh, criteria float64, maxXGrid int) ([]ExchangeCell, error) {
	var out []ExchangeCell

	for j1 := block.lo; j1 < block.hi; j1++ {
		for i1 := 0; i1 < src.Nx; i1++ {
			if !mask.Active(i1, j1) {
				continue
			}
			weight := mask.At(i1, j1)
			s := buildSourceCell(src, i1, j1, opts.Method)
			areaIn := srcAreas[j1*src.Nx+i1]

			for j2 := 0; j2 < dst.Ny; j2++ {
				for i2 := 0; i2 < dst.Nx; i2++ {
					t := targets[j2*dst.Nx+i2]

					if t.latMin >= s.latMax || t.latMax <= s.latMin {
						continue
					}

					var cell ExchangeCell
					var ok bool
					var err error

					switch opts.Method {
					case MethodGreatCircle:
						cell, ok, err = clipGreatCircleCell(s, t, criteria, weight, opts.UseBoxRadiusPrefilter)
					default:
						cell, ok, err = clipPlanarCell(s, t, weight, opts.Order)
					}
					if err != nil {
						return nil, fmt.Errorf("xgrid: cell (i_in=%d,j_in=%d) x (i_out=%d,j_out=%d): %w", i1, j1, i2, j2, err)
					}
					if !ok {
						continue
					}

					areaOut := dstAreas[j2*dst.Nx+i2]
					minArea := areaIn
					if areaOut < minArea {
						minArea = areaOut
					}
					if minArea == 0 || cell.Area/minArea <= areaRatioThresh {
						continue
					}

					cell.IIn, cell.JIn = i1, j1
					cell.IOut, cell.JOut = i2, j2
					out = append(out, cell)
					if len(out) > maxXGrid {
						return nil, fmt.Errorf("xgrid: block rows [%d,%d): %w", block.lo, block.hi, ErrCapacityExceeded)
					}
				}
			}
		}
	}
	return out, nil
}

// clipPlanarCell clips one source/target cell pair on the lon/lat plane,
// shifting the target's longitudes by a full turn when its average
// longitude is more than a half-turn away from the source's, the same
// "no need to consider cyclic condition afterward" fix the original applies
// before testing lon ranges.
func clipPlanarCell(s sourceCellInfo, t targetCellInfo, weight float64, order Order) (ExchangeCell, bool, error) {
	lon2 := append([]float64(nil), t.lon...)
	lonMin, lonMax := t.lonMin, t.lonMax

	dx := t.lonAvg - s.lonAvg
	switch {
	case dx < -M_PI:
		lonMin += M_2PI
		lonMax += M_2PI
		for i := range lon2 {
			lon2[i] += M_2PI
		}
	case dx > M_PI:
		lonMin -= M_2PI
		lonMax -= M_2PI
		for i := range lon2 {
			lon2[i] -= M_2PI
		}
	}

	if lonMin >= s.lonMax || lonMax <= s.lonMin {
		return ExchangeCell{}, false, nil
	}

	// CellCorners winds cells clockwise on the lon/lat plane, while
	// Clip2Dx2D's clip polygon must wind counterclockwise: reverse it.
	n := len(s.lon)
	clipLon := make([]float64, n)
	clipLat := make([]float64, n)
	for i := range s.lon {
		clipLon[i], clipLat[i] = s.lon[n-1-i], s.lat[n-1-i]
	}

	outLon, outLat, err := Clip2Dx2D(clipLon, clipLat, lon2, t.lat)
	if err != nil {
		return ExchangeCell{}, false, err
	}
	if len(outLon) == 0 {
		return ExchangeCell{}, false, nil
	}

	area := PolyAreaNoAdjust(outLon, outLat) * weight

	cell := ExchangeCell{Area: area}
	if order == OrderSecond {
		cell.CLon = PolyCtrLon(outLon, outLat, M_PI)
		cell.CLat = PolyCtrLat(outLon, outLat)
	}
	return cell, true, nil
}

// clipGreatCircleCell clips one source/target cell pair as great-circle
// arcs on the sphere. The centroid fields are left zero per the original's
// create_xgrid_great_circle (see DESIGN.md's open-question note).
func clipGreatCircleCell(s sourceCellInfo, t targetCellInfo, criteria, weight float64, boxRadiusPrefilter bool) (ExchangeCell, bool, error) {
	if boxRadiusPrefilter {
		sep := DistBetweenBoxes(s.x, s.y, s.z, t.x, t.y, t.z)
		if sep > GridBoxRadius(s.x, s.y, s.z)+GridBoxRadius(t.x, t.y, t.z) {
			return ExchangeCell{}, false, nil
		}
	}

	ox, oy, oz, err := ClipGreatCircle(s.x, s.y, s.z, t.x, t.y, t.z, criteria)
	if err != nil {
		return ExchangeCell{}, false, err
	}
	if len(ox) == 0 {
		return ExchangeCell{}, false, nil
	}
	area := GreatCircleArea(ox, oy, oz) * weight
	return ExchangeCell{Area: area}, true, nil
}

func minMax(v []float64) (min, max float64) {
	min, max = v[0], v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

func avg(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
