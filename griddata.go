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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/klauspost/pgzip"
)

const (
	// Fill is the sentinel marking missing grid cells.
	Fill = -999.

	// The NO2 body encodes each value as a fixed-width token of tokenWidth
	// characters, lineCols tokens per physical line.
	tokenWidth = 4
	lineCols   = 20

	// headerLines is the number of header lines before the data body.
	headerLines = 4

	// hchoSkipLines is the number of header and preamble lines before the
	// HCHO data body.
	hchoSkipLines = 7
)

// ReadNO2 reads the data body of the QA4ECV NO2 ASCII file at filename into
// a two-dimensional array of shape (nlat, nlon), where nlat and nlon are the
// row and column counts declared in the file header. The body holds, for
// each grid row, one label line followed by the row's nlon values in groups
// of 20 fixed-width tokens per line. The values are raw integer counts; unit
// scaling is left to the caller. nlon must be a multiple of 20; the format
// cannot represent other widths.
func ReadNO2(filename string, nlat, nlon int) (*sparse.DenseArray, error) {
	if nlon%lineCols != 0 {
		return nil, &ParseError{File: filename,
			Err: fmt.Errorf("the fixed-width body requires the column count to be a multiple of %d; got %d", lineCols, nlon)}
	}
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

	r := &lineReader{buf: bufio.NewReader(gz), file: filename}
	for i := 0; i < headerLines; i++ {
		if _, err := r.next(); err != nil {
			return nil, err
		}
	}

	groups := nlon / lineCols
	data := sparse.ZerosDense(nlat, nlon)
	for row := 0; row < nlat; row++ {
		if _, err := r.next(); err != nil { // row label
			return nil, err
		}
		col := 0
		for g := 0; g < groups; g++ {
			line, err := r.next()
			if err != nil {
				return nil, err
			}
			if len(line) < lineCols*tokenWidth {
				return nil, &ParseError{File: filename, Line: r.line,
					Err: fmt.Errorf("data line holds %d characters; need %d", len(line), lineCols*tokenWidth)}
			}
			for c := 0; c < lineCols; c++ {
				tok := strings.TrimSpace(line[c*tokenWidth : (c+1)*tokenWidth])
				v, err := strconv.Atoi(tok)
				if err != nil {
					return nil, &ParseError{File: filename, Line: r.line,
						Err: fmt.Errorf("parsing value %q: %v", tok, err)}
				}
				data.Set(float64(v), row, col)
				col++
			}
		}
	}
	return data, nil
}

// ReadHCHO reads the data body of the QA4ECV (or TEMIS) HCHO ASCII file at
// filename into a two-dimensional array of shape (nlat, nlon). The body is
// whitespace-delimited; the token NaN marks a missing cell and becomes the
// Fill sentinel. The number of values must match the header-declared grid
// size exactly.
func ReadHCHO(filename string, nlat, nlon int) (*sparse.DenseArray, error) {
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

	r := &lineReader{buf: bufio.NewReader(gz), file: filename}
	for i := 0; i < hchoSkipLines; i++ {
		if _, err := r.next(); err != nil {
			return nil, err
		}
	}

	data := sparse.ZerosDense(nlat, nlon)
	n := 0
	buf := bufio.NewScanner(r.buf)
	buf.Split(bufio.ScanWords)
	for buf.Scan() {
		tok := buf.Text()
		var v float64
		if tok == "NaN" {
			v = Fill
		} else if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, &ParseError{File: filename,
				Err: fmt.Errorf("parsing value %q: %v", tok, err)}
		}
		if n < len(data.Elements) {
			data.Elements[n] = v
		}
		n++
	}
	if err := buf.Err(); err != nil {
		return nil, &DecompressionError{File: filename, Err: err}
	}
	if n != nlat*nlon {
		return nil, &ShapeError{File: filename, Want: nlat * nlon, Have: n}
	}
	return data, nil
}

// A lineReader reads physical lines and tracks the current line number for
// error reporting. It handles both LF and CRLF terminators.
type lineReader struct {
	buf  *bufio.Reader
	file string
	line int
}

func (r *lineReader) next() (string, error) {
	s, err := r.buf.ReadString('\n')
	if err == io.EOF && s == "" {
		return "", &ParseError{File: r.file, Line: r.line,
			Err: fmt.Errorf("unexpected end of file after %d lines", r.line)}
	}
	if err != nil && err != io.EOF {
		return "", &DecompressionError{File: r.file, Err: err}
	}
	r.line++
	return strings.TrimRight(s, "\r\n"), nil
}
