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

// Package grid provides SIMD-friendly latitude/longitude fields.
//
// A Grid[T] stores one scalar per (latitude, longitude) cell in
// latitude-major order: row y is a full circle of longitudes at latitude
// index y. Rows are padded to the SIMD vector width so lane kernels can load
// whole vectors from any row.
//
// # Usage Example
//
//	// 0.5 degree global field
//	u := grid.New[float64](361, 720)
//	for y := range u.Rows() {
//	    row := u.RowSlice(y)
//	    // fill row ...
//	}
//
// # Interchange
//
//	FromRows(rows)             // [][]T, outer index latitude
//	FromFlat(data, rows, cols) // row-major buffer
//	FromDense(m) / ToDense(g)  // gonum matrices
//
// # Longitude Seam
//
// Columns are periodic. Wrap maps any column index onto [0, cols);
// ShiftWest and ShiftEast build whole-row neighbour buffers across the
// seam, and RollCols rotates every row.
package grid
