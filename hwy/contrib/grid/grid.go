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

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-cuv/hwy"
)

// ErrShape is returned when input data cannot form a rectangular grid of the
// requested size.
var ErrShape = errors.New("grid: inconsistent shape")

// Grid is a latitude-major 2D field with SIMD-aligned rows.
// Row y holds the values at latitude index y for every longitude; each row is
// padded to a multiple of the SIMD vector width.
type Grid[T hwy.Floats] struct {
	data   []T
	rows   int
	cols   int
	stride int // elements per row, padded to whole vectors
}

// New creates a zero-filled grid with the given number of latitude rows and
// longitude columns. Non-positive dimensions yield an empty grid.
func New[T hwy.Floats](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		return &Grid[T]{}
	}

	stride := hwy.AlignedSize[T](cols)
	return &Grid[T]{
		data:   make([]T, stride*rows),
		rows:   rows,
		cols:   cols,
		stride: stride,
	}
}

// FromRows copies a [][]T (outer index latitude) into a new grid.
// All rows must have the same length.
func FromRows[T hwy.Floats](src [][]T) (*Grid[T], error) {
	if len(src) == 0 {
		return New[T](0, 0), nil
	}
	cols := len(src[0])
	g := New[T](len(src), cols)
	for y, row := range src {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, y, len(row), cols)
		}
		copy(g.RowSlice(y), row)
	}
	return g, nil
}

// FromFlat copies a row-major buffer of rows*cols values into a new grid.
func FromFlat[T hwy.Floats](src []T, rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 || len(src) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrShape, len(src), rows, cols)
	}
	g := New[T](rows, cols)
	for y := range g.rows {
		copy(g.RowSlice(y), src[y*cols:(y+1)*cols])
	}
	return g, nil
}

// Rows returns the number of latitude rows.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of longitude columns.
func (g *Grid[T]) Cols() int {
	return g.cols
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual columns (excluding padding).
func (g *Grid[T]) RowSlice(y int) []T {
	if y < 0 || y >= g.rows || g.data == nil {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.cols]
}

// At returns the value at latitude index y, longitude index x.
// Out-of-range indices return zero.
func (g *Grid[T]) At(y, x int) T {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows || g.data == nil {
		var zero T
		return zero
	}
	return g.data[y*g.stride+x]
}

// Set sets the value at latitude index y, longitude index x.
// Out-of-range indices are ignored.
func (g *Grid[T]) Set(y, x int, value T) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows || g.data == nil {
		return
	}
	g.data[y*g.stride+x] = value
}

// Fill sets all cells to the specified value.
func (g *Grid[T]) Fill(value T) {
	for y := range g.rows {
		row := g.RowSlice(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Flat returns a row-major copy without padding.
func (g *Grid[T]) Flat() []T {
	out := make([]T, g.rows*g.cols)
	for y := range g.rows {
		copy(out[y*g.cols:], g.RowSlice(y))
	}
	return out
}

// ToRows returns a [][]T copy, outer index latitude.
func (g *Grid[T]) ToRows() [][]T {
	out := make([][]T, g.rows)
	for y := range g.rows {
		out[y] = append([]T(nil), g.RowSlice(y)...)
	}
	return out
}

// RollCols returns a copy whose column x holds this grid's column
// Wrap(x-shift, cols). Rolling by one moves every value one column east,
// with the last column reappearing at column 0.
func (g *Grid[T]) RollCols(shift int) *Grid[T] {
	out := New[T](g.rows, g.cols)
	for y := range g.rows {
		src := g.RowSlice(y)
		dst := out.RowSlice(y)
		for x := range dst {
			dst[x] = src[Wrap(x-shift, g.cols)]
		}
	}
	return out
}
