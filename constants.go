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

const (
	// pi
	M_PI = math.Pi // 3.14159265358979323846

	// pi / 2.0
	M_PI_2 = math.Pi / 2.0 // 1.5707963267948966

	// 2.0 * pi
	M_2PI = 2.0 * math.Pi // 6.28318530717958647692528676655900576839433

	// MV is the max number of vertices an intermediate clipped polygon may hold.
	MV = 20

	// MAX_V is the max number of vertices a precomputed target-grid polygon may hold.
	MAX_V = 8

	// MASK_THRESH is the source-cell participation threshold.
	MASK_THRESH = 0.5

	// AREA_RATIO_THRESH is the minimum overlap/min-parent area ratio for acceptance.
	AREA_RATIO_THRESH = 1.e-6

	// Floating-point snap / zero tolerances, named as in the original implementation.
	EPSLN8  = 1.e-8
	EPSLN10 = 1.e-10
	EPSLN30 = 1.0e-30

	// DefaultRangeCheckCriteria is the default bbox padding used to reject
	// disjoint spherical quadrilaterals before the expensive clip. Not
	// recovered from the visible original source; 0.05 is a tunable
	// default.
	DefaultRangeCheckCriteria = 0.05

	// DefaultMaxXGrid is the default cap on emitted exchange cells.
	DefaultMaxXGrid = 1_000_000

	// RADIUS is the earth radius in meters used to scale areas and centroids.
	RADIUS = 6371000.0

	// SmallValue gates the cheap linear approximation in the area and
	// latitude centroid integrals when an edge's latitude span is tiny.
	SmallValue = 1.e-10
)
