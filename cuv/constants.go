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

package cuv

import "math"

// EarthRadius is the mean Earth radius in metres.
const EarthRadius = 6.371e6

// degreeLength is the length in metres of one degree of arc on a great
// circle, 2π·EarthRadius/360, evaluated in float64 steps rather than as an
// exact constant.
var degreeLength = func() float64 {
	re, pi := float64(EarthRadius), math.Pi
	return 2.0 * pi * re / 360.0
}()

// DegreeLength returns the length in metres of one degree of arc on a great
// circle, the metric used for every difference.
func DegreeLength() float64 {
	return degreeLength
}

// Parallel tuning parameters for the row-parallel driver.
const (
	// MinParallelCells is the minimum grid size (rows*cols) before rows are
	// spread over a worker pool. Smaller grids run on the calling goroutine.
	MinParallelCells = 16384

	// RowBatch is the number of latitude rows handed to a worker per
	// atomic grab.
	RowBatch = 4
)

// radians converts degrees to radians by multiplying with π/180.
func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
