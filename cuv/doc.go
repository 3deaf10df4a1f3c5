// Copyright 2025 go-cuv Authors
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

// Package cuv computes curvature vorticity and trajectory curvature from
// gridded horizontal wind on a regular latitude/longitude grid.
//
// Given longitudes lon (N values, degrees, periodic over 360), latitudes lat
// (M values, degrees) and wind components u, v on an M x N latitude-major
// grid, Compute returns three M x N fields:
//
//	cvort = (-uv·∂u/∂x + u²·∂v/∂x - v²·∂u/∂y + uv·∂v/∂y) / (u² + v²)
//	cuv   = same numerator / (u² + v²)^1.5
//	tp    = u + u(west) + u(east) + u(south) + u(north)
//
// Derivatives are centred differences in metres: one degree of arc is
// DegreeLength metres, and zonal differences are divided by cos(lat).
// Longitude wraps at the seam (columns 0 and N-1 are neighbours); latitude
// does not, so rows 0 and M-1 are never computed and stay zero. Cells with
// zero wind speed also stay zero.
//
// # Kernels
//
// Each interior latitude row is independent. Two row kernels exist and
// produce bit-identical results:
//
//	CurvatureRow    // scalar loops, explicit seam columns
//	CurvatureRowVec // hwy lane operations over wrapped neighbour rows
//
// Compute runs CurvatureRowAuto, which is the scalar kernel. The lane
// kernel is available through ComputeWith.
//
// # Usage Example
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	res, err := cuv.Compute(pool, lon, lat, u, v)
//	if err != nil {
//	    return err
//	}
//	vort := res.CVort.RowSlice(ilat)
//
// A nil pool runs sequentially. ComputeFlat, ComputeDense and ComputeFields
// accept row-major slices, gonum matrices and coordinate-carrying fields.
//
// Undefined-value sentinels are not masked; they propagate arithmetically
// into neighbouring cells.
package cuv
