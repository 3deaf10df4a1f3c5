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
	"errors"
	"fmt"

	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
)

var (
	// ErrDimensionMismatch is returned when u, v, lon and lat do not agree
	// on the grid shape.
	ErrDimensionMismatch = errors.New("cuv: dimension mismatch")

	// ErrInsufficientGridSize is returned when the grid has fewer than three
	// latitudes or longitudes, so no interior cell exists.
	ErrInsufficientGridSize = errors.New("cuv: insufficient grid size")
)

// validate checks the shape preconditions shared by every entry point.
// Coordinate monotonicity and periodicity are not checked.
func validate(lon, lat []float64, u, v *grid.Grid[float64]) error {
	if u == nil || v == nil {
		return fmt.Errorf("%w: nil wind component", ErrDimensionMismatch)
	}
	m, n := len(lat), len(lon)
	if u.Rows() != m || u.Cols() != n {
		return fmt.Errorf("%w: u is %dx%d, coordinates give %dx%d", ErrDimensionMismatch, u.Rows(), u.Cols(), m, n)
	}
	if v.Rows() != m || v.Cols() != n {
		return fmt.Errorf("%w: v is %dx%d, coordinates give %dx%d", ErrDimensionMismatch, v.Rows(), v.Cols(), m, n)
	}
	if m < 3 || n < 3 {
		return fmt.Errorf("%w: %d latitudes x %d longitudes, need at least 3x3", ErrInsufficientGridSize, m, n)
	}
	return nil
}
