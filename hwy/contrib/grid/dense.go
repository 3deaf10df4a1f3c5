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

package grid

import "gonum.org/v1/gonum/mat"

// FromDense copies a gonum matrix into a new grid. Matrix rows map to
// latitude rows, matrix columns to longitude columns.
func FromDense(m mat.Matrix) *Grid[float64] {
	r, c := m.Dims()
	g := New[float64](r, c)
	if raw, ok := m.(mat.RawMatrixer); ok {
		rm := raw.RawMatrix()
		for y := range r {
			copy(g.RowSlice(y), rm.Data[y*rm.Stride:y*rm.Stride+c])
		}
		return g
	}
	for y := range r {
		row := g.RowSlice(y)
		for x := range row {
			row[x] = m.At(y, x)
		}
	}
	return g
}

// ToDense copies the grid into a new gonum matrix. An empty grid yields nil,
// since gonum does not allow zero-sized dense matrices.
func ToDense(g *Grid[float64]) *mat.Dense {
	if g.rows == 0 || g.cols == 0 {
		return nil
	}
	return mat.NewDense(g.rows, g.cols, g.Flat())
}
