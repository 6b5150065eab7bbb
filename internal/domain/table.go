// Package domain holds the core data types for spherical gridding requests.
package domain

import "fmt"

// Table holds point observations on a sphere as three parallel columns.
type Table struct {
	Lon   []float64 // Longitudes in degrees.
	Lat   []float64 // Latitudes in degrees.
	Value []float64 // Observed scalar at each (lon, lat).
}

// NewTable builds a table from parallel columns.
func NewTable(lon, lat, value []float64) (*Table, error) {
	t := &Table{Lon: lon, Lat: lat, Value: value}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of points in the table.
func (t *Table) Len() int {
	return len(t.Lon)
}

// Validate checks column lengths and minimum size.
func (t *Table) Validate() error {
	if len(t.Lat) != len(t.Lon) || len(t.Value) != len(t.Lon) {
		return fmt.Errorf("table columns must have equal length: lon=%d lat=%d value=%d",
			len(t.Lon), len(t.Lat), len(t.Value))
	}
	if len(t.Lon) == 0 {
		return fmt.Errorf("table must contain at least one point")
	}
	return nil
}

// Kind classifies how input data reaches the gridding engine.
type Kind int

const (
	// KindVectors is in-memory tabular data bridged through a virtual input.
	KindVectors Kind = iota
	// KindFile is a reference (path or URL) the engine reads directly.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindVectors:
		return "vectors"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Classify determines the data kind of a polymorphic input argument.
// Accepted shapes: *Table or Table (in-memory vectors), [][]float64 with
// rows of [lon, lat, value] (converted to a Table), and string (a file path
// or URL passed through to the engine). Classification happens once at the
// entry point of a call; unsupported shapes return an error.
func Classify(data any) (Kind, *Table, string, error) {
	switch v := data.(type) {
	case *Table:
		if v == nil {
			return 0, nil, "", fmt.Errorf("nil table")
		}
		if err := v.Validate(); err != nil {
			return 0, nil, "", err
		}
		return KindVectors, v, "", nil
	case Table:
		if err := v.Validate(); err != nil {
			return 0, nil, "", err
		}
		return KindVectors, &v, "", nil
	case [][]float64:
		t, err := tableFromMatrix(v)
		if err != nil {
			return 0, nil, "", err
		}
		return KindVectors, t, "", nil
	case string:
		if v == "" {
			return 0, nil, "", fmt.Errorf("empty input reference")
		}
		return KindFile, nil, v, nil
	default:
		return 0, nil, "", fmt.Errorf("unsupported input type %T (want *Table, [][]float64, or path string)", data)
	}
}

// tableFromMatrix converts an n x 3 matrix of [lon, lat, value] rows.
func tableFromMatrix(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input matrix")
	}
	t := &Table{
		Lon:   make([]float64, 0, len(rows)),
		Lat:   make([]float64, 0, len(rows)),
		Value: make([]float64, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("matrix row %d has %d columns, expected 3 (lon, lat, value)", i, len(row))
		}
		t.Lon = append(t.Lon, row[0])
		t.Lat = append(t.Lat, row[1])
		t.Value = append(t.Value, row[2])
	}
	return t, nil
}
