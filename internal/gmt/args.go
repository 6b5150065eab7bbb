package gmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Options maps long option names to values for a module call.
// Recognized keys: outgrid (output .nc path), increment (scalar or
// two-component sequence), region (four-component sequence), verbose
// (bool or level string).
type Options map[string]any

// optionFlags is the allow-list, mapping long names to GMT single-letter flags.
var optionFlags = map[string]string{
	"outgrid":   "G",
	"increment": "I",
	"region":    "R",
	"verbose":   "V",
}

// sequenceSep joins sequence-valued options into a single token.
const sequenceSep = "/"

// Validate rejects unknown option keys.
func (o Options) Validate() error {
	for key := range o {
		if _, ok := optionFlags[key]; !ok {
			return invalidInputf("unrecognized option %q", key)
		}
	}
	return nil
}

// OutGrid returns the caller-supplied output path, if any.
func (o Options) OutGrid() (string, bool) {
	v, ok := o["outgrid"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// BuildArgs serializes an option set into a deterministic, order-stable
// argument string. Sequence values are joined with "/" into one token per
// option; scalars pass through. The caller must have validated the set.
func BuildArgs(opts Options) (string, error) {
	tokens := make([]string, 0, len(opts))
	for key, value := range opts {
		flag, ok := optionFlags[key]
		if !ok {
			return "", invalidInputf("unrecognized option %q", key)
		}
		formatted, err := formatValue(value)
		if err != nil {
			return "", invalidInputf("option %q: %v", key, err)
		}
		if formatted == omitToken {
			continue
		}
		tokens = append(tokens, "-"+flag+formatted)
	}
	// Stable ordering by flag letter.
	sort.Strings(tokens)
	return strings.Join(tokens, " "), nil
}

// omitToken marks an option that serializes to nothing (e.g. verbose=false).
const omitToken = "\x00omit"

// formatValue renders a single option value as its argument form.
func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		if !val {
			return omitToken, nil
		}
		return "", nil
	case int:
		return strconv.Itoa(val), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, sequenceSep), nil
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, sequenceSep), nil
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			s, err := formatValue(item)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, sequenceSep), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
