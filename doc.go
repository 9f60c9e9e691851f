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

// Package qa4ecv reads QA4ECV (or TEMIS) trace-gas column data files and
// converts them to NetCDF format. The input files are gzip-compressed ASCII
// grids of monthly average HCHO or NO2 tropospheric columns; the output is a
// NetCDF dataset with Latitude and Longitude coordinate variables and one
// gridded data variable per file.
package qa4ecv
