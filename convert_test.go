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
	"io"
	"os"
	"testing"
	"time"

	"github.com/ctessum/cdf"
	"github.com/sirupsen/logrus"
)

func testConverter() *Converter {
	c := NewConverter()
	log := logrus.New()
	log.SetOutput(io.Discard)
	c.Log = log
	c.Now = func() time.Time {
		return time.Date(2019, time.March, 7, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestConvertNO2(t *testing.T) {
	fname := "TestConvertNO2.gz"
	outfile := "TestConvertNO2.nc"
	writeGz(t, fname, no2Body(2, 40, func(row, col int) int { return 100*(row+1) + col }))
	defer os.Remove(fname)
	defer os.Remove(outfile)

	if err := testConverter().ConvertNO2(fname, outfile); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outfile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	nc, err := cdf.Open(f)
	if err != nil {
		t.Fatal(err)
	}
	if want, have := "QA4ECV monthly average NO2", nc.Header.GetAttribute("", "description"); want != have {
		t.Errorf("description: want %q but have %v", want, have)
	}
	if want, have := "1e13 molec/cm2", nc.Header.GetAttribute("NO2", "units"); want != have {
		t.Errorf("units: want %q but have %v", want, have)
	}
	if want, have := "Created 07/03/19", nc.Header.GetAttribute("", "history"); want != have {
		t.Errorf("history: want %q but have %v", want, have)
	}

	grid := readVar(t, outfile, "NO2")
	if grid[0] != 100 {
		t.Errorf("element (0,0): want 100 but have %g", grid[0])
	}
	if grid[79] != 239 {
		t.Errorf("element (1,39): want 239 but have %g", grid[79])
	}
}

func TestConvertHCHO(t *testing.T) {
	fname := "TestConvertHCHO.gz"
	outfile := "TestConvertHCHO.nc"
	writeGz(t, fname, hchoBody("1.5", "2.5", "NaN", "-4.0", "5.25", "6.0"))
	defer os.Remove(fname)
	defer os.Remove(outfile)

	if err := testConverter().ConvertHCHO(fname, outfile); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outfile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	nc, err := cdf.Open(f)
	if err != nil {
		t.Fatal(err)
	}
	if want, have := "monthly average HCHO", nc.Header.GetAttribute("", "description"); want != have {
		t.Errorf("description: want %q but have %v", want, have)
	}
	if want, have := "1e15 molec/cm2", nc.Header.GetAttribute("HCHO", "units"); want != have {
		t.Errorf("units: want %q but have %v", want, have)
	}

	grid := readVar(t, outfile, "HCHO")
	if grid[2] != Fill {
		t.Errorf("missing cell: want %g but have %g", float64(Fill), grid[2])
	}
	if grid[4] != 5.25 {
		t.Errorf("element (1,1): want 5.25 but have %g", grid[4])
	}
}

// A conversion that fails before the output stage must not create an output
// file.
func TestConvertBadHeader(t *testing.T) {
	fname := "TestConvertBadHeader.gz"
	outfile := "TestConvertBadHeader.nc"
	writeGz(t, fname, "line0\nno numbers here\nnone here either\nor here\n")
	defer os.Remove(fname)

	if err := testConverter().ConvertNO2(fname, outfile); err == nil {
		t.Fatal("want an error for a header without numeric tokens")
	}
	if _, err := os.Stat(outfile); !os.IsNotExist(err) {
		os.Remove(outfile)
		t.Error("no output file should be created when the header fails to parse")
	}
}
