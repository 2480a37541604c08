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

import "errors"

// Sentinel errors replacing the fatal error_handler()-and-abort pattern of
// the original C implementation. Every fallible function here returns one
// of these (optionally wrapped with cell-pair context) instead of aborting.
var (
	// ErrCapacityExceeded is returned when nxgrid would exceed MAXXGRID
	// globally, or a block's staging buffer would exceed MAXXGRID/nthreads.
	ErrCapacityExceeded = errors.New("xgrid: exchange cell count exceeds capacity")

	// ErrVertexOverflow is returned when a clipped polygon would exceed MV
	// or MAX_V vertices.
	ErrVertexOverflow = errors.New("xgrid: clipped polygon exceeds max vertex count")

	// ErrNotConvex is returned when an input spherical quadrilateral has
	// non-positive signed area.
	ErrNotConvex = errors.New("xgrid: input polygon is not convex")

	// ErrDegenerateTraversal is returned when the spherical clipper's
	// Weiler-Atherton loop fails to close within its iteration bounds, or
	// a required firstIntersect node is absent from the subject list.
	ErrDegenerateTraversal = errors.New("xgrid: spherical clip traversal did not close")

	// ErrParallelEdges is returned by the planar 2Dx2D clip when two edges
	// being intersected are parallel (determinant below EPSLN30).
	ErrParallelEdges = errors.New("xgrid: clip edges are parallel")
)
