package gmt

import (
	"errors"
	"testing"
)

func TestBuildArgsSequenceSerialization(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "region four components",
			opts: Options{"region": []float64{0, 10, 0, 5}},
			want: "-R0/10/0/5",
		},
		{
			name: "increment pair",
			opts: Options{"increment": []float64{1, 1}},
			want: "-I1/1",
		},
		{
			name: "increment int pair",
			opts: Options{"increment": []int{1, 1}},
			want: "-I1/1",
		},
		{
			name: "scalar increment",
			opts: Options{"increment": 0.5},
			want: "-I0.5",
		},
		{
			name: "string passthrough",
			opts: Options{"increment": "5m"},
			want: "-I5m",
		},
		{
			name: "verbose flag only",
			opts: Options{"verbose": true},
			want: "-V",
		},
		{
			name: "verbose false omitted",
			opts: Options{"verbose": false},
			want: "",
		},
		{
			name: "combined ordered by flag",
			opts: Options{
				"verbose":   true,
				"region":    []float64{0, 10, 0, 5},
				"outgrid":   "/tmp/out.nc",
				"increment": []float64{1, 1},
			},
			want: "-G/tmp/out.nc -I1/1 -R0/10/0/5 -V",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildArgs(tt.opts)
			if err != nil {
				t.Fatalf("BuildArgs: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildArgs = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildArgsDeterministic(t *testing.T) {
	opts := Options{
		"region":    []float64{120, 150, 20, 50},
		"increment": []float64{0.1, 0.1},
		"outgrid":   "out.nc",
	}
	first, err := BuildArgs(opts)
	if err != nil {
		t.Fatalf("BuildArgs: %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := BuildArgs(opts)
		if err != nil {
			t.Fatalf("BuildArgs: %v", err)
		}
		if got != first {
			t.Fatalf("BuildArgs not deterministic: %q vs %q", got, first)
		}
	}
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	opts := Options{"tension": 0.5}
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected error for unknown option key")
	}
	var invalidErr *InvalidInputError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
	}
}

func TestBuildArgsUnsupportedValueType(t *testing.T) {
	_, err := BuildArgs(Options{"region": struct{}{}})
	var invalidErr *InvalidInputError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
	}
}

func TestOutGrid(t *testing.T) {
	if _, ok := (Options{}).OutGrid(); ok {
		t.Error("empty options should have no outgrid")
	}
	if _, ok := (Options{"outgrid": ""}).OutGrid(); ok {
		t.Error("empty outgrid value should count as unset")
	}
	path, ok := (Options{"outgrid": "/data/out.nc"}).OutGrid()
	if !ok || path != "/data/out.nc" {
		t.Errorf("OutGrid = %q, %v; want /data/out.nc, true", path, ok)
	}
}
