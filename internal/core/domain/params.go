package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RunParams are the inputs of one packaging run.
type RunParams struct {
	// OutputRoot is the package directory being assembled.
	OutputRoot string
	// SourceRoot is the directory copied sources are made relative to.
	SourceRoot string
	// BuildRoot is the build output tree holding declarations and metadata.
	BuildRoot string
	// Readme is an optional README copied to the package root.
	Readme string
	// Fesms2015 and Fesms5 are flattened module files, in caller-significant order.
	Fesms2015 []string
	Fesms5    []string
	// Bundles are UMD bundles copied flat into bundles/.
	Bundles []string
	// Sources are text files copied relative to SourceRoot.
	Sources []string
	// StampData is an optional stamp file providing the version.
	StampData string
	// License is an optional license banner file.
	License string
}

// Validate checks that the required roots are present.
func (p RunParams) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"out", p.OutputRoot},
		{"src-root", p.SourceRoot},
		{"bin-root", p.BuildRoot},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(ErrMissingRunParam, "param", r.name)
		}
	}
	return nil
}

// Merge returns p with every empty field filled from fallback.
func (p RunParams) Merge(fallback RunParams) RunParams {
	pick := func(v, f string) string {
		if v != "" {
			return v
		}
		return f
	}
	pickList := func(v, f []string) []string {
		if len(v) > 0 {
			return v
		}
		return f
	}
	return RunParams{
		OutputRoot: pick(p.OutputRoot, fallback.OutputRoot),
		SourceRoot: pick(p.SourceRoot, fallback.SourceRoot),
		BuildRoot:  pick(p.BuildRoot, fallback.BuildRoot),
		Readme:     pick(p.Readme, fallback.Readme),
		Fesms2015:  pickList(p.Fesms2015, fallback.Fesms2015),
		Fesms5:     pickList(p.Fesms5, fallback.Fesms5),
		Bundles:    pickList(p.Bundles, fallback.Bundles),
		Sources:    pickList(p.Sources, fallback.Sources),
		StampData:  pick(p.StampData, fallback.StampData),
		License:    pick(p.License, fallback.License),
	}
}

// SplitList splits a comma-separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// positionalParamCount is the number of lines in a positional params file.
const positionalParamCount = 10

// ParsePositionalParams reads the ten positional run parameters in the order
// out, src root, bin root, readme, fesm2015, fesm5, bundles, srcs, stamp data, license.
// Lists are comma separated; empty lines mean "absent". Values may be wrapped in
// single quotes.
func ParsePositionalParams(data string) (RunParams, error) {
	lines := make([]string, 0, positionalParamCount)
	for line := range strings.Lines(data) {
		lines = append(lines, UnquoteParam(strings.TrimRight(line, "\r\n")))
	}
	for len(lines) > positionalParamCount && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < positionalParamCount-2 || len(lines) > positionalParamCount {
		return RunParams{}, zerr.With(ErrInvalidParamsFile, "lines", len(lines))
	}
	for len(lines) < positionalParamCount {
		lines = append(lines, "")
	}

	return RunParams{
		OutputRoot: lines[0],
		SourceRoot: lines[1],
		BuildRoot:  lines[2],
		Readme:     lines[3],
		Fesms2015:  SplitList(lines[4]),
		Fesms5:     SplitList(lines[5]),
		Bundles:    SplitList(lines[6]),
		Sources:    SplitList(lines[7]),
		StampData:  lines[8],
		License:    lines[9],
	}, nil
}

// UnquoteParam removes one pair of surrounding single quotes.
func UnquoteParam(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
