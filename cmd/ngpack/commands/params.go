package commands

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.trai.ch/ngpack/internal/app"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// runFlags are the run parameter flags shared by package, watch and clean.
type runFlags struct {
	out, srcRoot, binRoot string
	readme                string
	fesm2015, fesm5       []string
	bundles, srcs         []string
	stampData, license    string
	paramsFile            string
}

func (f *runFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.out, "out", "", "Package directory to assemble")
	flags.StringVar(&f.srcRoot, "src-root", "", "Root that copied sources are made relative to")
	flags.StringVar(&f.binRoot, "bin-root", "", "Build output root holding declarations and metadata")
	flags.StringVar(&f.readme, "readme", "", "README copied to the package root")
	flags.StringSliceVar(&f.fesm2015, "fesm2015", nil, "ES2015 flat module files")
	flags.StringSliceVar(&f.fesm5, "fesm5", nil, "ES5 flat module files")
	flags.StringSliceVar(&f.bundles, "bundles", nil, "UMD bundle files")
	flags.StringSliceVar(&f.srcs, "srcs", nil, "Source files copied relative to --src-root")
	flags.StringVar(&f.stampData, "stamp-data", "", "Stamp file providing BUILD_SCM_VERSION")
	flags.StringVar(&f.license, "license", "", "License banner prepended to redirect declarations")
	flags.StringVar(&f.paramsFile, "params", "", "File with the ten positional run parameters, one per line")
}

// params returns the flag values over the --params file values.
func (f *runFlags) params(fsys afero.Fs) (domain.RunParams, error) {
	explicit := domain.RunParams{
		OutputRoot: f.out,
		SourceRoot: f.srcRoot,
		BuildRoot:  f.binRoot,
		Readme:     f.readme,
		Fesms2015:  f.fesm2015,
		Fesms5:     f.fesm5,
		Bundles:    f.bundles,
		Sources:    f.srcs,
		StampData:  f.stampData,
		License:    f.license,
	}
	if f.paramsFile == "" {
		return explicit, nil
	}

	data, err := afero.ReadFile(fsys, f.paramsFile)
	if err != nil {
		return domain.RunParams{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidParamsFile.Error()), "path", f.paramsFile)
	}
	positional, err := domain.ParsePositionalParams(string(data))
	if err != nil {
		return domain.RunParams{}, zerr.With(err, "path", f.paramsFile)
	}
	return explicit.Merge(positional), nil
}

func (c *CLI) packageOptions(cmd *cobra.Command, f *runFlags) (app.PackageOptions, error) {
	params, err := f.params(c.fs)
	if err != nil {
		return app.PackageOptions{}, err
	}
	manifest, _ := cmd.Flags().GetString("manifest")
	progress, _ := cmd.Flags().GetString("progress")
	return app.PackageOptions{Params: params, Manifest: manifest, Progress: progress}, nil
}

// ExpandParamFiles replaces every "@path" argument with the lines of that
// file, each stripped of one pair of surrounding single quotes. Blank lines
// are dropped.
func ExpandParamFiles(fsys afero.Fs, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		path, ok := strings.CutPrefix(arg, "@")
		if !ok || path == "" {
			out = append(out, arg)
			continue
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidParamsFile.Error()), "path", path)
		}
		for line := range strings.Lines(string(data)) {
			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				continue
			}
			out = append(out, domain.UnquoteParam(line))
		}
	}
	return out, nil
}
