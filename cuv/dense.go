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

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
	"github.com/ajroetker/go-cuv/hwy/contrib/workerpool"
)

// ComputeDense is Compute for gonum matrices with len(lat) rows and
// len(lon) columns.
func ComputeDense(pool *workerpool.Pool, lon, lat []float64, u, v mat.Matrix) (*Result, error) {
	if isNilMatrix(u) || isNilMatrix(v) {
		return nil, fmt.Errorf("%w: nil wind component", ErrDimensionMismatch)
	}
	return Compute(pool, lon, lat, grid.FromDense(u), grid.FromDense(v))
}

// isNilMatrix reports whether m is nil or a nil pointer, such as a nil
// *mat.Dense stored in the interface.
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Dense returns copies of the three output fields as gonum matrices.
func (r *Result) Dense() (cvort, curv, tp *mat.Dense) {
	return grid.ToDense(r.CVort), grid.ToDense(r.Curv), grid.ToDense(r.TP)
}
