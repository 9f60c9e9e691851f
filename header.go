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
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/klauspost/pgzip"
)

// A Header holds the grid geometry declared in the first lines of a
// QA4ECV (or TEMIS) ASCII data file.
type Header struct {
	// Year and Month are the period that the monthly average applies to.
	Year  int
	Month int

	// Nlat and Nlon are the number of grid rows and columns.
	Nlat int
	Nlon int

	// LatStart and LatEnd are the latitudes of the first and last rows;
	// LonStart and LonEnd are the longitudes of the first and last columns.
	// The file stores the southern and western extents as positive
	// magnitudes, so the start values here are their negations.
	LatStart float64
	LatEnd   float64
	LonStart float64
	LonEnd   float64
}

// numberRE matches integer and decimal tokens embedded in header text.
var numberRE = regexp.MustCompile(`[-+]?\d*\.\d+|\d+`)

// ReadHeader reads the grid geometry from the header of the QA4ECV (or
// TEMIS) ASCII data file at filename. Both the HCHO and the NO2 products
// share the same four-line header layout: the first line is ignored, the
// second holds the year and month, the third the number of columns and the
// western and eastern extents, and the fourth the number of rows and the
// southern and northern extents. All other text on the header lines is
// ignored.
func ReadHeader(filename string) (*Header, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gz, err := pgzip.NewReader(f)
	if err != nil {
		return nil, &DecompressionError{File: filename, Err: err}
	}
	defer gz.Close()

	buf := bufio.NewScanner(gz)
	lines := make([]string, 0, 4)
	for len(lines) < 4 && buf.Scan() {
		lines = append(lines, buf.Text())
	}
	if err := buf.Err(); err != nil {
		return nil, &DecompressionError{File: filename, Err: err}
	}
	if len(lines) < 4 {
		return nil, &ParseError{File: filename, Line: len(lines),
			Err: fmt.Errorf("file ended after %d header lines; need 4", len(lines))}
	}

	h := new(Header)
	date := numberRE.FindAllString(lines[1], -1)
	if len(date) < 2 {
		return nil, &ParseError{File: filename, Line: 2,
			Err: fmt.Errorf("found %d numeric tokens; need 2 (year, month)", len(date))}
	}
	if h.Year, err = strconv.Atoi(date[0]); err != nil {
		return nil, &ParseError{File: filename, Line: 2, Err: err}
	}
	if h.Month, err = strconv.Atoi(date[1]); err != nil {
		return nil, &ParseError{File: filename, Line: 2, Err: err}
	}

	if h.Nlon, h.LonStart, h.LonEnd, err = extentLine(lines[2]); err != nil {
		return nil, &ParseError{File: filename, Line: 3, Err: err}
	}
	if h.Nlat, h.LatStart, h.LatEnd, err = extentLine(lines[3]); err != nil {
		return nil, &ParseError{File: filename, Line: 4, Err: err}
	}
	return h, nil
}

// extentLine extracts a grid dimension from a header line: the cell count,
// the start-coordinate magnitude (negated to give the true start), and the
// end coordinate.
func extentLine(line string) (n int, start, end float64, err error) {
	tokens := numberRE.FindAllString(line, -1)
	if len(tokens) < 3 {
		return 0, 0, 0, fmt.Errorf("found %d numeric tokens; need 3 (count, start, end)", len(tokens))
	}
	if n, err = strconv.Atoi(tokens[0]); err != nil {
		return 0, 0, 0, err
	}
	if n <= 0 {
		return 0, 0, 0, fmt.Errorf("cell count must be positive; got %d", n)
	}
	if start, err = strconv.ParseFloat(tokens[1], 64); err != nil {
		return 0, 0, 0, err
	}
	if end, err = strconv.ParseFloat(tokens[2], 64); err != nil {
		return 0, 0, 0, err
	}
	return n, -start, end, nil
}
