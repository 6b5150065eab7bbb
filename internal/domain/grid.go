package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid is a labeled 2-D array of interpolated values on a lon/lat raster.
// Values[i][j] corresponds to (Lon[j], Lat[i]).
type Grid struct {
	Lon    []float64
	Lat    []float64
	Values [][]float64
}

// Metadata summarizes a grid: shape, coordinate ranges, and z statistics.
type Metadata struct {
	NLon   int     `json:"n_lon"`
	NLat   int     `json:"n_lat"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	ZMin   float64 `json:"z_min"`
	ZMax   float64 `json:"z_max"`
	ZMean  float64 `json:"z_mean"`
}

// Validate checks grid shape and coordinate ordering.
func (g *Grid) Validate() error {
	if len(g.Lon) < 2 {
		return fmt.Errorf("grid must have at least 2 longitude coordinates")
	}
	if len(g.Lat) < 2 {
		return fmt.Errorf("grid must have at least 2 latitude coordinates")
	}
	if len(g.Values) != len(g.Lat) {
		return fmt.Errorf("number of value rows (%d) must match latitude coordinates (%d)", len(g.Values), len(g.Lat))
	}
	for i, row := range g.Values {
		if len(row) != len(g.Lon) {
			return fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(g.Lon))
		}
	}
	for i := 1; i < len(g.Lon); i++ {
		if g.Lon[i] <= g.Lon[i-1] {
			return fmt.Errorf("longitude coordinates must be strictly increasing")
		}
	}
	for i := 1; i < len(g.Lat); i++ {
		if g.Lat[i] <= g.Lat[i-1] {
			return fmt.Errorf("latitude coordinates must be strictly increasing")
		}
	}
	return nil
}

// Shape returns (nLat, nLon).
func (g *Grid) Shape() (int, int) {
	return len(g.Lat), len(g.Lon)
}

// Meta computes the metadata summary for the grid.
func (g *Grid) Meta() Metadata {
	m := Metadata{
		NLon: len(g.Lon),
		NLat: len(g.Lat),
	}
	if len(g.Lon) > 0 {
		m.LonMin, m.LonMax = g.Lon[0], g.Lon[len(g.Lon)-1]
	}
	if len(g.Lat) > 0 {
		m.LatMin, m.LatMax = g.Lat[0], g.Lat[len(g.Lat)-1]
	}
	flat := make([]float64, 0, len(g.Lat)*len(g.Lon))
	for _, row := range g.Values {
		flat = append(flat, row...)
	}
	if len(flat) > 0 {
		m.ZMin = floats.Min(flat)
		m.ZMax = floats.Max(flat)
		m.ZMean = stat.Mean(flat, nil)
	}
	return m
}

// Sample performs bilinear interpolation of the grid at (lon, lat).
// The point must lie inside the grid's coordinate range.
func (g *Grid) Sample(lon, lat float64) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("invalid grid: %w", err)
	}

	xIdx := cellIndex(g.Lon, lon)
	if xIdx < 0 {
		return 0, fmt.Errorf("longitude %.6f is outside grid range [%.6f, %.6f]", lon, g.Lon[0], g.Lon[len(g.Lon)-1])
	}
	yIdx := cellIndex(g.Lat, lat)
	if yIdx < 0 {
		return 0, fmt.Errorf("latitude %.6f is outside grid range [%.6f, %.6f]", lat, g.Lat[0], g.Lat[len(g.Lat)-1])
	}

	x0, x1 := g.Lon[xIdx], g.Lon[xIdx+1]
	y0, y1 := g.Lat[yIdx], g.Lat[yIdx+1]

	// Normalized coordinates, clamped for floating point edge cases.
	t := math.Max(0, math.Min(1, (lon-x0)/(x1-x0)))
	u := math.Max(0, math.Min(1, (lat-y0)/(y1-y0)))

	v00 := g.Values[yIdx][xIdx]
	v10 := g.Values[yIdx][xIdx+1]
	v01 := g.Values[yIdx+1][xIdx]
	v11 := g.Values[yIdx+1][xIdx+1]

	return (1-t)*(1-u)*v00 + t*(1-u)*v10 + (1-t)*u*v01 + t*u*v11, nil
}

// cellIndex locates the cell [coords[i], coords[i+1]] containing v, or -1.
func cellIndex(coords []float64, v float64) int {
	for i := 0; i < len(coords)-1; i++ {
		if v >= coords[i] && v <= coords[i+1] {
			return i
		}
	}
	return -1
}
