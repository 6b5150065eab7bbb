// Package xyztable loads ASCII lon/lat/value tables.
package xyztable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.ngs.io/sphgrid/internal/domain"
)

// Load reads a lon/lat/value table from a file.
func Load(path string) (*domain.Table, error) {
	//nolint:gosec // G304: Path comes from caller input by design.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer func() { _ = file.Close() }()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a lon/lat/value table from a stream. Rows are whitespace or
// comma separated; blank lines and lines starting with # are skipped.
func Parse(r io.Reader) (*domain.Table, error) {
	table := &domain.Table{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitRow(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns (lon lat value), got %d", lineNo, len(fields))
		}

		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q: %w", lineNo, fields[0], err)
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q: %w", lineNo, fields[1], err)
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q: %w", lineNo, fields[2], err)
		}

		table.Lon = append(table.Lon, lon)
		table.Lat = append(table.Lat, lat)
		table.Value = append(table.Value, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// splitRow splits a data row on commas or runs of whitespace.
func splitRow(line string) []string {
	if strings.Contains(line, ",") {
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return strings.Fields(line)
}
