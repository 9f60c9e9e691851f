/*
Copyright © 2020 the OMI-Convert2nc authors.
This file is part of OMI-Convert2nc.

OMI-Convert2nc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OMI-Convert2nc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OMI-Convert2nc.  If not, see <http://www.gnu.org/licenses/>.*/

package qa4ecv

import (
	"fmt"
	"os"
	"time"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// WriteNC writes the grid data to a NetCDF file at outname, replacing any
// existing file at that path. The dataset holds a Longitude and a Latitude
// coordinate variable spanning the header extents inclusively, and one
// (lat, lon) variable named varname with the given units and the Fill
// sentinel as its fill value. description becomes the dataset description
// attribute and created its creation-history attribute. The upstream
// product files group the variables under varname; the classic NetCDF
// layout written here is flat, with the group name kept as a global
// attribute.
func WriteNC(data *sparse.DenseArray, h *Header, outname, varname, units, description string, created time.Time) error {
	if len(data.Shape) != 2 || data.Shape[0] != h.Nlat || data.Shape[1] != h.Nlon {
		return &ShapeError{File: outname, Want: h.Nlat * h.Nlon, Have: len(data.Elements)}
	}

	if err := os.Remove(outname); err != nil && !os.IsNotExist(err) {
		return err
	}
	w, err := os.Create(outname)
	if err != nil {
		return err
	}
	defer w.Close()

	nch := cdf.NewHeader([]string{"lat", "lon"}, []int{h.Nlat, h.Nlon})
	nch.AddAttribute("", "description", description)
	nch.AddAttribute("", "history", "Created "+created.Format("02/01/06"))
	nch.AddAttribute("", "group", varname)

	nch.AddVariable("Longitude", []string{"lon"}, []float32{0})
	nch.AddAttribute("Longitude", "units", "degrees east")
	nch.AddVariable("Latitude", []string{"lat"}, []float32{0})
	nch.AddAttribute("Latitude", "units", "degrees north")
	nch.AddVariable(varname, []string{"lat", "lon"}, []float32{0})
	nch.AddAttribute(varname, "units", units)
	nch.AddAttribute(varname, "_FillValue", []float32{Fill})
	nch.Define()

	f, err := cdf.Create(w, nch) // writes the header to w
	if err != nil {
		return err
	}
	if err := writeNCF(f, "Longitude", axis(h.LonStart, h.LonEnd, h.Nlon)); err != nil {
		return fmt.Errorf("qa4ecv: writing longitudes to %s: %v", outname, err)
	}
	if err := writeNCF(f, "Latitude", axis(h.LatStart, h.LatEnd, h.Nlat)); err != nil {
		return fmt.Errorf("qa4ecv: writing latitudes to %s: %v", outname, err)
	}
	grid := make([]float32, len(data.Elements))
	for i, e := range data.Elements {
		grid[i] = float32(e)
	}
	if err := writeNCF(f, varname, grid); err != nil {
		return fmt.Errorf("qa4ecv: writing variable %s to %s: %v", varname, outname, err)
	}
	return cdf.UpdateNumRecs(w)
}

// axis returns n coordinates linearly spaced from start to end inclusive.
// A single-point axis degenerates to its start coordinate.
func axis(start, end float64, n int) []float32 {
	if n == 1 {
		return []float32{float32(start)}
	}
	x := make([]float64, n)
	floats.Span(x, start, end)
	ax := make([]float32, n)
	for i, v := range x {
		ax[i] = float32(v)
	}
	return ax
}

// writeNCF writes data as the whole of NetCDF variable v.
func writeNCF(f *cdf.File, v string, data []float32) error {
	end := f.Header.Lengths(v)
	start := make([]int, len(end))
	w := f.Writer(v, start, end)
	_, err := w.Write(data)
	return err
}
