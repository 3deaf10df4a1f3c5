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

import "github.com/ajroetker/go-cuv/hwy/contrib/grid"

// rowKernel pairs a row implementation with the name KernelName reports.
type rowKernel struct {
	name string
	fn   RowKernel
}

// defaultRow is the kernel Compute and Derivatives run. The lane kernel
// computes on emulated vectors and is slower than the scalar loop, so it is
// only used when passed to ComputeWith.
var defaultRow = rowKernel{name: "scalar", fn: CurvatureRow}

// CurvatureRowAuto runs the default row kernel.
func CurvatureRowAuto(st *Stencil, ilat int, u, v *grid.Grid[float64], ws *Workspace, cvort, curv, tp []float64) {
	defaultRow.fn(st, ilat, u, v, ws, cvort, curv, tp)
}

// KernelName returns the name of the row kernel behind CurvatureRowAuto.
func KernelName() string {
	return defaultRow.name
}
