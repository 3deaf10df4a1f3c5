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
	"math"

	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
)

// RowKernel computes latitude row ilat (1 <= ilat <= M-2) of the three
// output fields. It reads rows ilat-1, ilat and ilat+1 of u and v, writes
// the row's derivatives into ws and the results into cvort, curv and tp,
// which must each have len(st.Lon) elements.
type RowKernel func(st *Stencil, ilat int, u, v *grid.Grid[float64], ws *Workspace, cvort, curv, tp []float64)

// CurvatureRow is the scalar row kernel. Differences are taken from the
// coordinates directly; the two seam columns are handled after the
// interior loop.
func CurvatureRow(st *Stencil, ilat int, u, v *grid.Grid[float64], ws *Workspace, cvort, curv, tp []float64) {
	lon, lat := st.Lon, st.Lat
	nlon := len(lon)
	last := nlon - 1

	uS, uC, uN := u.RowSlice(ilat-1), u.RowSlice(ilat), u.RowSlice(ilat+1)
	vS, vC, vN := v.RowSlice(ilat-1), v.RowSlice(ilat), v.RowSlice(ilat+1)
	dux, duy, dvx, dvy := ws.Dux, ws.Duy, ws.Dvx, ws.Dvy

	// Meridional derivatives, every column.
	dlat := lat[ilat+1] - lat[ilat-1]
	for i := range nlon {
		duy[i] = (uN[i] - uS[i]) / dlat / degreeLength
		dvy[i] = (vN[i] - vS[i]) / dlat / degreeLength
	}

	// Zonal derivatives and the 5-point sum, interior columns.
	cosLat := math.Cos(radians(lat[ilat]))
	for i := 1; i < last; i++ {
		dlon := lon[i+1] - lon[i-1]
		dux[i] = (uC[i+1] - uC[i-1]) / dlon / degreeLength / cosLat
		dvx[i] = (vC[i+1] - vC[i-1]) / dlon / degreeLength / cosLat
		tp[i] = uC[i] + uC[i-1] + uC[i+1] + uS[i] + uN[i]
	}

	// Seam: the missing neighbour is on the other edge, one turn away.
	dlon := (lon[1] - lon[last]) + 360.0
	dux[0] = (uC[1] - uC[last]) / dlon / degreeLength / cosLat
	dvx[0] = (vC[1] - vC[last]) / dlon / degreeLength / cosLat
	tp[0] = uC[0] + uC[last] + uC[1] + uS[0] + uN[0]

	dlon = (lon[0] - lon[last-1]) + 360.0
	dux[last] = (uC[0] - uC[last-1]) / dlon / degreeLength / cosLat
	dvx[last] = (vC[0] - vC[last-1]) / dlon / degreeLength / cosLat
	tp[last] = uC[last] + uC[last-1] + uC[0] + uS[last] + uN[last]

	curvatureCells(uC, vC, dux, duy, dvx, dvy, cvort, curv)
}

// curvatureCells combines one row of wind and derivatives. Products are
// converted explicitly so they are rounded before being summed; the lane
// kernel rounds at the same points.
func curvatureCells(u, v, dux, duy, dvx, dvy, cvort, curv []float64) {
	for i := range u {
		uu := float64(u[i] * u[i])
		vv := float64(v[i] * v[i])
		uv := float64(u[i] * v[i])

		denom := uu + vv
		if denom > 0 {
			num := float64(-uv*dux[i]) + float64(uu*dvx[i]) - float64(vv*duy[i]) + float64(uv*dvy[i])
			cvort[i] = num / denom
			curv[i] = num / math.Pow(denom, 1.5)
		} else {
			// Calm (or undefined) wind: no trajectory, no curvature.
			cvort[i] = 0
			curv[i] = 0
		}
	}
}
