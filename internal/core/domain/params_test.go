package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/core/domain"
)

func TestRunParams_Validate(t *testing.T) {
	valid := domain.RunParams{OutputRoot: "out", SourceRoot: "src", BuildRoot: "bin"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		params domain.RunParams
	}{
		{name: "missing out", params: domain.RunParams{SourceRoot: "src", BuildRoot: "bin"}},
		{name: "missing src root", params: domain.RunParams{OutputRoot: "out", BuildRoot: "bin"}},
		{name: "blank bin root", params: domain.RunParams{OutputRoot: "out", SourceRoot: "src", BuildRoot: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrMissingRunParam.Error())
		})
	}
}

func TestRunParams_Merge(t *testing.T) {
	flags := domain.RunParams{OutputRoot: "dist", Fesms2015: []string{"a.js"}}
	manifest := domain.RunParams{
		OutputRoot: "out",
		SourceRoot: "src",
		Fesms2015:  []string{"b.js"},
		Bundles:    []string{"b.umd.js"},
	}

	got := flags.Merge(manifest)

	assert.Equal(t, "dist", got.OutputRoot)
	assert.Equal(t, "src", got.SourceRoot)
	assert.Equal(t, []string{"a.js"}, got.Fesms2015)
	assert.Equal(t, []string{"b.umd.js"}, got.Bundles)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, domain.SplitList(""))
	assert.Equal(t, []string{"a.js", "b.js"}, domain.SplitList("a.js,,b.js,"))
	assert.Equal(t, []string{"a.js"}, domain.SplitList(" a.js "))
}

func TestParsePositionalParams(t *testing.T) {
	data := "'dist'\n" +
		"packages/core\n" +
		"bin/packages/core\n" +
		"packages/core/README.md\n" +
		"bin/core.js,bin/core__testing.js\n" +
		"bin/es5/core.js\n" +
		"bin/core.umd.js\n" +
		"packages/core/package.json\n" +
		"\n" +
		"LICENSE\n"

	got, err := domain.ParsePositionalParams(data)
	require.NoError(t, err)

	assert.Equal(t, domain.RunParams{
		OutputRoot: "dist",
		SourceRoot: "packages/core",
		BuildRoot:  "bin/packages/core",
		Readme:     "packages/core/README.md",
		Fesms2015:  []string{"bin/core.js", "bin/core__testing.js"},
		Fesms5:     []string{"bin/es5/core.js"},
		Bundles:    []string{"bin/core.umd.js"},
		Sources:    []string{"packages/core/package.json"},
		StampData:  "",
		License:    "LICENSE",
	}, got)
}

func TestParsePositionalParams_TrailingOptionalsOmitted(t *testing.T) {
	got, err := domain.ParsePositionalParams("out\nsrc\nbin\n\na.js\n\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, "out", got.OutputRoot)
	assert.Equal(t, []string{"a.js"}, got.Fesms2015)
	assert.Empty(t, got.StampData)
	assert.Empty(t, got.License)
}

func TestParsePositionalParams_WrongShape(t *testing.T) {
	_, err := domain.ParsePositionalParams("out\nsrc\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidParamsFile.Error())
}

func TestUnquoteParam(t *testing.T) {
	assert.Equal(t, "a b", domain.UnquoteParam("'a b'"))
	assert.Equal(t, "'", domain.UnquoteParam("'"))
	assert.Equal(t, "plain", domain.UnquoteParam("plain"))
}
