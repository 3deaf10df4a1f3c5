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

	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
	"github.com/ajroetker/go-cuv/hwy/contrib/workerpool"
)

// Result holds the three output fields of one computation. All have the
// shape of the input wind; rows 0 and M-1 are zero.
type Result struct {
	CVort *grid.Grid[float64] // curvature vorticity, s^-1
	Curv  *grid.Grid[float64] // trajectory curvature, m^-1
	TP    *grid.Grid[float64] // 5-point neighbour sum of u
}

// Gradient holds the centred differences of the wind, per metre.
// Rows 0 and M-1 are zero.
type Gradient struct {
	Dux, Duy, Dvx, Dvy *grid.Grid[float64]
}

func newResult(m, n int) *Result {
	return &Result{
		CVort: grid.New[float64](m, n),
		Curv:  grid.New[float64](m, n),
		TP:    grid.New[float64](m, n),
	}
}

func newGradient(m, n int) *Gradient {
	return &Gradient{
		Dux: grid.New[float64](m, n),
		Duy: grid.New[float64](m, n),
		Dvx: grid.New[float64](m, n),
		Dvy: grid.New[float64](m, n),
	}
}

// store copies the derivative rows of ws into row ilat.
func (g *Gradient) store(ilat int, ws *Workspace) {
	copy(g.Dux.RowSlice(ilat), ws.Dux)
	copy(g.Duy.RowSlice(ilat), ws.Duy)
	copy(g.Dvx.RowSlice(ilat), ws.Dvx)
	copy(g.Dvy.RowSlice(ilat), ws.Dvy)
}

// Compute returns curvature vorticity, curvature and the 5-point sum for the
// wind (u, v) on the grid spanned by lon and lat. u and v must have
// len(lat) rows and len(lon) columns.
//
// With a non-nil pool, grids of at least MinParallelCells cells are split
// across workers by latitude row. Results do not depend on the pool.
func Compute(pool *workerpool.Pool, lon, lat []float64, u, v *grid.Grid[float64]) (*Result, error) {
	return ComputeWith(pool, CurvatureRowAuto, lon, lat, u, v)
}

// ComputeWith is Compute with an explicit row kernel.
func ComputeWith(pool *workerpool.Pool, kernel RowKernel, lon, lat []float64, u, v *grid.Grid[float64]) (*Result, error) {
	if err := validate(lon, lat, u, v); err != nil {
		return nil, err
	}
	st := NewStencil(lon, lat)
	res := newResult(st.Rows(), st.Cols())
	run(pool, kernel, st, u, v, res, nil)
	return res, nil
}

// Derivatives returns the four centred wind derivatives the curvature is
// built from.
func Derivatives(pool *workerpool.Pool, lon, lat []float64, u, v *grid.Grid[float64]) (*Gradient, error) {
	if err := validate(lon, lat, u, v); err != nil {
		return nil, err
	}
	st := NewStencil(lon, lat)
	res := newResult(st.Rows(), st.Cols())
	grad := newGradient(st.Rows(), st.Cols())
	run(pool, CurvatureRowAuto, st, u, v, res, grad)
	return grad, nil
}

// ComputeFlat is Compute for row-major buffers of len(lat)*len(lon) values.
func ComputeFlat(pool *workerpool.Pool, lon, lat, u, v []float64) (*Result, error) {
	m, n := len(lat), len(lon)
	if len(u) != m*n || len(v) != m*n {
		return nil, fmt.Errorf("%w: u has %d values, v has %d, coordinates give %dx%d",
			ErrDimensionMismatch, len(u), len(v), m, n)
	}
	ug, err := grid.FromFlat(u, m, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	vg, err := grid.FromFlat(v, m, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	return Compute(pool, lon, lat, ug, vg)
}

// run drives kernel over the interior rows [1, M-1). Each batch of rows
// gets its own Workspace; rows write only their own output cells.
func run(pool *workerpool.Pool, kernel RowKernel, st *Stencil, u, v *grid.Grid[float64], res *Result, grad *Gradient) {
	m, n := st.Rows(), st.Cols()

	rows := func(start, end int) {
		ws := NewWorkspace(n)
		for ilat := start; ilat < end; ilat++ {
			kernel(st, ilat, u, v, ws,
				res.CVort.RowSlice(ilat), res.Curv.RowSlice(ilat), res.TP.RowSlice(ilat))
			if grad != nil {
				grad.store(ilat, ws)
			}
		}
	}

	if pool == nil || m*n < MinParallelCells {
		rows(1, m-1)
		return
	}
	pool.ParallelRange(1, m-1, RowBatch, rows)
}
