// Package main provides the sphgrid command-line tool: spherical gridding of
// scattered lon/lat/value data through the GMT engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.ngs.io/sphgrid/internal/adapter/xyztable"
	"go.ngs.io/sphgrid/internal/domain"
	"go.ngs.io/sphgrid/internal/gmt"
	"go.ngs.io/sphgrid/internal/usecase"
)

func main() {
	// Command line flags
	inPath := flag.String("in", "-", "Input table (lon lat value rows), or - for stdin")
	outPath := flag.String("out", "", "Output netCDF grid path (empty: print a summary instead)")
	increment := flag.String("increment", "", "Grid spacing, e.g. 1 or 1/1")
	region := flag.String("region", "", "Bounding box west/east/south/north, e.g. 0/10/0/5")
	verbose := flag.Bool("verbose", false, "Verbose engine output")
	gmtBin := flag.String("gmt", os.Getenv("GMT_BIN"), "Path to the gmt executable (default: gmt on PATH)")
	flag.Parse()

	table, err := loadTable(*inPath)
	if err != nil {
		log.Fatalf("Failed to load input table: %v", err)
	}
	log.Printf("Loaded %d points from %s", table.Len(), *inPath)

	opts := gmt.Options{}
	if *outPath != "" {
		opts["outgrid"] = *outPath
	}
	if *increment != "" {
		opts["increment"] = *increment
	}
	if *region != "" {
		seq, err := parseSequence(*region, 4)
		if err != nil {
			log.Fatalf("Invalid -region: %v", err)
		}
		opts["region"] = seq
	}
	if *verbose {
		opts["verbose"] = true
	}

	gridder := usecase.NewGridder(*gmtBin)
	grid, err := gridder.SphInterpolate(table, opts)
	if err != nil {
		log.Fatalf("Gridding failed: %v", err)
	}

	if grid == nil {
		log.Printf("Grid written to %s", *outPath)
		return
	}

	meta := grid.Meta()
	fmt.Printf("Grid: %d x %d (lat x lon)\n", meta.NLat, meta.NLon)
	fmt.Printf("Longitude: %.6g to %.6g\n", meta.LonMin, meta.LonMax)
	fmt.Printf("Latitude:  %.6g to %.6g\n", meta.LatMin, meta.LatMax)
	fmt.Printf("Z: min %.6g, max %.6g, mean %.6g\n", meta.ZMin, meta.ZMax, meta.ZMean)
}

// loadTable reads the input table from a file or stdin.
func loadTable(path string) (*domain.Table, error) {
	if path == "-" {
		return xyztable.Parse(os.Stdin)
	}
	return xyztable.Load(path)
}

// parseSequence parses a "/"-separated float sequence of the expected length.
func parseSequence(s string, want int) ([]float64, error) {
	parts := strings.Split(s, "/")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}
	seq := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		seq[i] = f
	}
	return seq, nil
}
