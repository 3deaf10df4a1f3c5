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
	"github.com/ajroetker/go-cuv/hwy"
	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
)

// CurvatureRowVec is the lane row kernel. The seam is resolved up front by
// building wrapped west/east neighbour rows, after which every column runs
// the same vector body.
func CurvatureRowVec(st *Stencil, ilat int, u, v *grid.Grid[float64], ws *Workspace, cvort, curv, tp []float64) {
	nlon := st.Cols()

	uS, uC, uN := u.RowSlice(ilat-1), u.RowSlice(ilat), u.RowSlice(ilat+1)
	vS, vC, vN := v.RowSlice(ilat-1), v.RowSlice(ilat), v.RowSlice(ilat+1)

	grid.ShiftWest(uC, ws.uWest)
	grid.ShiftEast(uC, ws.uEast)
	grid.ShiftWest(vC, ws.vWest)
	grid.ShiftEast(vC, ws.vEast)

	dlatV := hwy.Set(st.LatSpan[ilat])
	ddegV := hwy.Set(degreeLength)
	cosV := hwy.Set(st.CosLat[ilat])
	zero := hwy.Zero[float64]()
	speedExp := hwy.Set(1.5)

	body := func(i, j int) {
		// Meridional derivatives.
		un, us := hwy.Load(uN[i:j]), hwy.Load(uS[i:j])
		vn, vs := hwy.Load(vN[i:j]), hwy.Load(vS[i:j])
		duy := hwy.Div(hwy.Div(hwy.Sub(un, us), dlatV), ddegV)
		dvy := hwy.Div(hwy.Div(hwy.Sub(vn, vs), dlatV), ddegV)

		// Zonal derivatives.
		span := hwy.Load(st.LonSpan[i:j])
		uc, uw, ue := hwy.Load(uC[i:j]), hwy.Load(ws.uWest[i:j]), hwy.Load(ws.uEast[i:j])
		vc, vw, ve := hwy.Load(vC[i:j]), hwy.Load(ws.vWest[i:j]), hwy.Load(ws.vEast[i:j])
		dux := hwy.Div(hwy.Div(hwy.Div(hwy.Sub(ue, uw), span), ddegV), cosV)
		dvx := hwy.Div(hwy.Div(hwy.Div(hwy.Sub(ve, vw), span), ddegV), cosV)

		// 5-point sum: centre, west, east, south, north.
		sum := hwy.Add(hwy.Add(hwy.Add(hwy.Add(uc, uw), ue), us), un)

		// Curvature.
		uu := hwy.Mul(uc, uc)
		vv := hwy.Mul(vc, vc)
		uv := hwy.Mul(uc, vc)
		denom := hwy.Add(uu, vv)
		num := hwy.Add(
			hwy.Sub(
				hwy.Add(hwy.Mul(hwy.Neg(uv), dux), hwy.Mul(uu, dvx)),
				hwy.Mul(vv, duy)),
			hwy.Mul(uv, dvy))
		moving := hwy.GreaterThan(denom, zero)

		hwy.Store(duy, ws.Duy[i:j])
		hwy.Store(dvy, ws.Dvy[i:j])
		hwy.Store(dux, ws.Dux[i:j])
		hwy.Store(dvx, ws.Dvx[i:j])
		hwy.Store(sum, tp[i:j])
		hwy.Store(hwy.IfThenElseZero(moving, hwy.Div(num, denom)), cvort[i:j])
		hwy.Store(hwy.IfThenElseZero(moving, hwy.Div(num, hwy.Pow(denom, speedExp))), curv[i:j])
	}

	lanes := hwy.MaxLanes[float64]()
	hwy.ProcessWithTail[float64](nlon,
		func(offset int) {
			body(offset, offset+lanes)
		},
		func(offset, count int) {
			body(offset, offset+count)
		},
	)
}
