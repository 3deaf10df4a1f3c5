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

// Stencil holds the grid coordinates and the per-row and per-column
// geometry of the centred differences. It is read-only once built and is
// shared by all workers of one call.
type Stencil struct {
	Lon []float64
	Lat []float64

	// LonSpan[i] is lon[i+1] - lon[i-1] in degrees, with the neighbour on
	// the far side of the seam taken one full turn away at i=0 and i=N-1.
	LonSpan []float64

	// LatSpan[j] is lat[j+1] - lat[j-1] in degrees; zero at rows 0 and M-1.
	LatSpan []float64

	// CosLat[j] is cos(lat[j]).
	CosLat []float64
}

// NewStencil precomputes the difference geometry for a grid. lon and lat
// must each have at least three values.
func NewStencil(lon, lat []float64) *Stencil {
	n, m := len(lon), len(lat)
	st := &Stencil{
		Lon:     lon,
		Lat:     lat,
		LonSpan: make([]float64, n),
		LatSpan: make([]float64, m),
		CosLat:  make([]float64, m),
	}

	for i := 1; i < n-1; i++ {
		st.LonSpan[i] = lon[i+1] - lon[i-1]
	}
	st.LonSpan[0] = (lon[1] - lon[n-1]) + 360.0
	st.LonSpan[n-1] = (lon[0] - lon[n-2]) + 360.0

	for j := 1; j < m-1; j++ {
		st.LatSpan[j] = lat[j+1] - lat[j-1]
	}
	for j := range m {
		st.CosLat[j] = math.Cos(radians(lat[j]))
	}
	return st
}

// Rows returns the number of latitudes.
func (st *Stencil) Rows() int { return len(st.Lat) }

// Cols returns the number of longitudes.
func (st *Stencil) Cols() int { return len(st.Lon) }

// Workspace holds the per-row scratch a row kernel writes: the four
// derivative rows and wrapped east/west neighbour rows. One Workspace is
// owned by one worker and reused for every row it processes.
type Workspace struct {
	Dux, Duy, Dvx, Dvy []float64

	uWest, uEast []float64
	vWest, vEast []float64
}

// NewWorkspace allocates scratch for rows of n longitudes.
func NewWorkspace(n int) *Workspace {
	buf := make([]float64, 8*n)
	return &Workspace{
		Dux:   buf[0*n : 1*n : 1*n],
		Duy:   buf[1*n : 2*n : 2*n],
		Dvx:   buf[2*n : 3*n : 3*n],
		Dvy:   buf[3*n : 4*n : 4*n],
		uWest: buf[4*n : 5*n : 5*n],
		uEast: buf[5*n : 6*n : 6*n],
		vWest: buf[6*n : 7*n : 7*n],
		vEast: buf[7*n : 8*n : 8*n],
	}
}
