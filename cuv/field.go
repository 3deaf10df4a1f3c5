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
	"slices"

	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
	"github.com/ajroetker/go-cuv/hwy/contrib/workerpool"
)

// Output field names.
const (
	NameCurvatureVorticity = "curvature_vorticity"
	NameCurvature          = "curvature"
	NameTopography         = "topography"
)

// Field is a named grid that carries its own latitude and longitude
// coordinates, the way labelled arrays do in analysis tooling.
type Field struct {
	Name  string
	Units string
	Lat   []float64
	Lon   []float64
	Data  *grid.Grid[float64]
}

// NewField wraps data with its coordinates.
func NewField(name, units string, lat, lon []float64, data *grid.Grid[float64]) Field {
	return Field{Name: name, Units: units, Lat: lat, Lon: lon, Data: data}
}

// withData returns a field on the given coordinates holding data. The
// coordinates are copied.
func withData(name, units string, lat, lon []float64, data *grid.Grid[float64]) Field {
	return Field{
		Name:  name,
		Units: units,
		Lat:   slices.Clone(lat),
		Lon:   slices.Clone(lon),
		Data:  data,
	}
}

// FieldOption overrides a coordinate ComputeFields would otherwise take from
// its inputs.
type FieldOption func(*fieldCoords)

type fieldCoords struct {
	lat, lon []float64
}

// WithLon computes on lon instead of the longitudes carried by u and v. A
// nil lon leaves the carried coordinate in use.
func WithLon(lon []float64) FieldOption {
	return func(c *fieldCoords) { c.lon = lon }
}

// WithLat computes on lat instead of the latitudes carried by u and v. A
// nil lat leaves the carried coordinate in use.
func WithLat(lat []float64) FieldOption {
	return func(c *fieldCoords) { c.lat = lat }
}

// ComputeFields is Compute for coordinate-carrying fields. u and v must be
// on identical coordinates, except along an axis overridden by WithLon or
// WithLat, where the override is used and the carried values are ignored.
// The outputs are on the coordinates used and are named
// NameCurvatureVorticity, NameCurvature and NameTopography; the last keeps
// the units of u.
func ComputeFields(pool *workerpool.Pool, u, v Field, opts ...FieldOption) (cvort, curv, tp Field, err error) {
	var c fieldCoords
	for _, opt := range opts {
		opt(&c)
	}
	if c.lat == nil {
		if !slices.Equal(u.Lat, v.Lat) {
			err = fmt.Errorf("%w: %s and %s are on different latitudes", ErrDimensionMismatch, u.Name, v.Name)
			return
		}
		c.lat = u.Lat
	}
	if c.lon == nil {
		if !slices.Equal(u.Lon, v.Lon) {
			err = fmt.Errorf("%w: %s and %s are on different longitudes", ErrDimensionMismatch, u.Name, v.Name)
			return
		}
		c.lon = u.Lon
	}

	res, err := Compute(pool, c.lon, c.lat, u.Data, v.Data)
	if err != nil {
		err = fmt.Errorf("%s/%s: %w", u.Name, v.Name, err)
		return
	}

	cvort = withData(NameCurvatureVorticity, "s-1", c.lat, c.lon, res.CVort)
	curv = withData(NameCurvature, "m-1", c.lat, c.lon, res.Curv)
	tp = withData(NameTopography, u.Units, c.lat, c.lon, res.TP)
	return
}
