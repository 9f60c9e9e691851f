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
	"time"

	"github.com/sirupsen/logrus"
)

// A Converter converts QA4ECV (or TEMIS) ASCII data files to NetCDF files.
// Each conversion is a single pass over one input file; a Converter holds no
// state between files and may be reused.
type Converter struct {
	// Log receives diagnostic information about the conversions.
	Log logrus.FieldLogger

	// Now supplies the creation date recorded in the output history
	// attribute.
	Now func() time.Time
}

// NewConverter returns a Converter with the default logger and clock.
func NewConverter() *Converter {
	return &Converter{
		Log: logrus.StandardLogger(),
		Now: time.Now,
	}
}

// ConvertHCHO converts the QA4ECV (or TEMIS) monthly average HCHO file at
// fname to a NetCDF file at outname, replacing any existing file there. The
// data variable is named HCHO with units of 1e15 molec/cm2.
func (c *Converter) ConvertHCHO(fname, outname string) error {
	h, err := ReadHeader(fname)
	if err != nil {
		return err
	}
	data, err := ReadHCHO(fname, h.Nlat, h.Nlon)
	if err != nil {
		return err
	}
	c.logGrid(fname, outname, "HCHO", h)
	return WriteNC(data, h, outname, "HCHO", "1e15 molec/cm2", "monthly average HCHO", c.Now())
}

// ConvertNO2 converts the QA4ECV monthly average NO2 file at fname to a
// NetCDF file at outname, replacing any existing file there. The data
// variable is named NO2 and holds the raw integer counts from the file
// body; the units attribute is 1e13 molec/cm2.
func (c *Converter) ConvertNO2(fname, outname string) error {
	h, err := ReadHeader(fname)
	if err != nil {
		return err
	}
	data, err := ReadNO2(fname, h.Nlat, h.Nlon)
	if err != nil {
		return err
	}
	c.logGrid(fname, outname, "NO2", h)
	return WriteNC(data, h, outname, "NO2", "1e13 molec/cm2", "QA4ECV monthly average NO2", c.Now())
}

func (c *Converter) logGrid(fname, outname, varname string, h *Header) {
	c.Log.WithFields(logrus.Fields{
		"input":  fname,
		"output": outname,
		"var":    varname,
		"year":   h.Year,
		"month":  h.Month,
		"rows":   h.Nlat,
		"cols":   h.Nlon,
	}).Info("writing netcdf output")
}
