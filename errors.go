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

import "fmt"

// A DecompressionError occurs when an input file is not valid gzip or the
// compressed stream is truncated.
type DecompressionError struct {
	File string
	Err  error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("qa4ecv: decompressing file %s: %v", e.File, e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// A ParseError occurs when the header or body of an input file does not
// match the expected QA4ECV/TEMIS layout. Line is the 1-based line number
// where the problem was found, or 0 if it is not tied to a single line.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("qa4ecv: in file %s, line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("qa4ecv: in file %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A ShapeError occurs when a grid does not match the size declared in a
// header: either a file body decoded to the wrong number of values, or a
// grid passed for writing disagrees with the header it is written with.
// File names the file being read or written.
type ShapeError struct {
	File string
	Want int
	Have int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("qa4ecv: %s: grid size %d does not match the header-declared size %d", e.File, e.Have, e.Want)
}
