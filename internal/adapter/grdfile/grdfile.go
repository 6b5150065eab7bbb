// Package grdfile reads netCDF grid files produced by the GMT engine into
// in-memory labeled grids.
package grdfile

import (
	"fmt"
	"math"

	"github.com/fhs/go-netcdf/netcdf"

	"go.ngs.io/sphgrid/internal/domain"
)

// Candidate variable names tried in order. GMT writes COARDS-compliant grids
// with lon/lat/z, but grids from other producers vary.
var (
	lonNames = []string{"lon", "longitude", "x"}
	latNames = []string{"lat", "latitude", "y"}
	zNames   = []string{"z", "data", "elevation"}
)

// Read fully materializes a 2-D grid from a netCDF file. Values are
// returned as Values[lat][lon]; grids stored [lon, lat] are transposed.
// Fill values are mapped to NaN.
func Read(path string) (*domain.Grid, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	lonData, err := readCoord(nc, lonNames)
	if err != nil {
		return nil, fmt.Errorf("longitude axis: %w", err)
	}
	latData, err := readCoord(nc, latNames)
	if err != nil {
		return nil, fmt.Errorf("latitude axis: %w", err)
	}

	var zVar netcdf.Var
	var found bool
	for _, name := range zNames {
		if v, err := nc.Var(name); err == nil {
			zVar = v
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("grid variable not found (tried: %v)", zNames)
	}

	nLat := len(latData)
	nLon := len(lonData)

	dims, err := zVar.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get grid dimensions: %w", err)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("expected 2D grid, got %dD", len(dims))
	}
	dim0Len, err := dims[0].Len()
	if err != nil {
		return nil, fmt.Errorf("failed to get dim0 length: %w", err)
	}
	dim1Len, err := dims[1].Len()
	if err != nil {
		return nil, fmt.Errorf("failed to get dim1 length: %w", err)
	}

	var values [][]float64
	switch {
	case dim0Len == uint64(nLat) && dim1Len == uint64(nLon):
		values, err = read2D(zVar, nLat, nLon)
	case dim0Len == uint64(nLon) && dim1Len == uint64(nLat):
		var transposed [][]float64
		transposed, err = read2D(zVar, nLon, nLat)
		if err == nil {
			values = transpose2D(transposed)
		}
	default:
		return nil, fmt.Errorf("dimension mismatch: grid is [%d, %d], expected [%d, %d] or [%d, %d]",
			dim0Len, dim1Len, nLat, nLon, nLon, nLat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grid values: %w", err)
	}

	if fv, ok := fillValue(zVar); ok {
		for i := range values {
			for j := range values[i] {
				if values[i][j] == fv {
					values[i][j] = math.NaN()
				}
			}
		}
	}

	grid := &domain.Grid{
		Lon:    lonData,
		Lat:    latData,
		Values: values,
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	return grid, nil
}

// fillValue returns the _FillValue or missing_value attribute if present.
func fillValue(v netcdf.Var) (float64, bool) {
	for _, name := range []string{"_FillValue", "missing_value"} {
		a := v.Attr(name)
		if a == (netcdf.Attr{}) {
			continue
		}
		if n, err := a.Len(); err == nil && n > 0 {
			buf64 := make([]float64, 1)
			if err := a.ReadFloat64s(buf64); err == nil {
				return buf64[0], true
			}
			buf32 := make([]float32, 1)
			if err := a.ReadFloat32s(buf32); err == nil {
				return float64(buf32[0]), true
			}
			bufi := make([]int32, 1)
			if err := a.ReadInt32s(bufi); err == nil {
				return float64(bufi[0]), true
			}
		}
	}
	return 0, false
}

// readCoord reads a 1-D coordinate axis, trying candidate names in order.
func readCoord(nc netcdf.Dataset, names []string) ([]float64, error) {
	for _, name := range names {
		v, err := nc.Var(name)
		if err != nil {
			continue
		}
		data, err := read1D(v)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("variable not found (tried: %v)", names)
}

// read1D reads a 1-D float64 array from a netCDF variable.
func read1D(v netcdf.Var) ([]float64, error) {
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("expected 1D variable, got %dD", len(dims))
	}
	length, err := dims[0].Len()
	if err != nil {
		return nil, err
	}
	return readFloats(v, int(length))
}

// read2D reads a 2-D float64 array from a netCDF variable.
func read2D(v netcdf.Var, nRows, nCols int) ([][]float64, error) {
	flat, err := readFloats(v, nRows*nCols)
	if err != nil {
		return nil, err
	}
	values := make([][]float64, nRows)
	for i := 0; i < nRows; i++ {
		values[i] = flat[i*nCols : (i+1)*nCols]
	}
	return values, nil
}

// readFloats reads total values of any supported numeric type as float64.
func readFloats(v netcdf.Var, total int) ([]float64, error) {
	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get var type: %w", err)
	}
	switch t {
	case netcdf.DOUBLE:
		data := make([]float64, total)
		if err := v.ReadFloat64s(data); err != nil {
			return nil, err
		}
		return data, nil
	case netcdf.FLOAT:
		tmp := make([]float32, total)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, total)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.INT:
		tmp := make([]int32, total)
		if err := v.ReadInt32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, total)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.SHORT:
		tmp := make([]int16, total)
		if err := v.ReadInt16s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, total)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported var type: %v", t)
	}
}

// transpose2D transposes a 2-D array.
func transpose2D(data [][]float64) [][]float64 {
	if len(data) == 0 {
		return data
	}
	nRows := len(data)
	nCols := len(data[0])
	transposed := make([][]float64, nCols)
	for i := 0; i < nCols; i++ {
		transposed[i] = make([]float64, nRows)
		for j := 0; j < nRows; j++ {
			transposed[i][j] = data[j][i]
		}
	}
	return transposed
}
