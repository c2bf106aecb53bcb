// Package packager sequences a packaging run over the artifact lists.
package packager

import (
	"context"
	"path/filepath"

	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/ngpack/internal/engine/descriptor"
	"go.trai.ch/ngpack/internal/engine/layout"
	"go.trai.ch/ngpack/internal/engine/redirect"
	"go.trai.ch/ngpack/internal/engine/stamp"
	"go.trai.ch/zerr"
)

// Phase names, in execution order.
const (
	PhaseStamp          = "stamp"
	PhaseReadme         = "readme"
	PhaseFesm2015       = "fesm2015"
	PhaseFesm5          = "fesm5"
	PhaseBundles        = "bundles"
	PhaseDeclarations   = "declarations"
	PhaseSources        = "sources"
	PhaseBundleMetadata = "bundle-index-metadata"
	PhaseRedirects      = "redirects"
)

// Packager assembles a package directory from build artifacts.
type Packager struct {
	storage  ports.Storage
	tracer   ports.Tracer
	rewriter *descriptor.Rewriter
}

// NewPackager creates a new Packager.
func NewPackager(storage ports.Storage, tracer ports.Tracer) *Packager {
	return &Packager{
		storage:  storage,
		tracer:   tracer,
		rewriter: descriptor.NewRewriter(),
	}
}

// run holds the state of one packaging run.
type run struct {
	*Packager
	params  domain.RunParams
	placer  *layout.Placer
	res     *domain.Resolution
	stamp   *stamp.Substitutor
	written []string

	// bundleIndexMetadata is placed after sources, once every declaration is out.
	bundleIndexMetadata []domain.Artifact
}

// Run executes one packaging run. Every step runs to completion before the next
// starts; the first error aborts the run and leaves already written files behind.
func (p *Packager) Run(ctx context.Context, params domain.RunParams) (domain.PackageReport, error) {
	if err := params.Validate(); err != nil {
		return domain.PackageReport{}, err
	}

	ctx, span := p.tracer.Start(ctx, "package")
	defer span.End()
	span.SetAttribute("output_root", params.OutputRoot)

	r := &run{
		Packager: p,
		params:   params,
		placer:   layout.NewPlacer(params.OutputRoot, params.SourceRoot, params.BuildRoot),
		res:      domain.NewResolution(),
	}

	phases := []struct {
		name string
		fn   func() error
	}{
		{PhaseStamp, r.loadStamp},
		{PhaseReadme, r.placeReadme},
		{PhaseFesm2015, func() error { return r.placeFesms(domain.KindFesmEs2015, params.Fesms2015) }},
		{PhaseFesm5, func() error { return r.placeFesms(domain.KindFesmEs5, params.Fesms5) }},
		{PhaseBundles, r.placeBundles},
		{PhaseDeclarations, r.placeBuildOutputs},
		{PhaseSources, r.placeSources},
		{PhaseBundleMetadata, r.placeBundleIndexMetadata},
		{PhaseRedirects, r.synthesizeRedirects},
	}

	for _, phase := range phases {
		if err := r.phase(ctx, phase.name, phase.fn); err != nil {
			span.RecordError(err)
			return domain.PackageReport{}, err
		}
	}

	span.SetAttribute(ports.AttrWritten, len(r.written))
	span.SetAttribute("primary", r.res.Primary().String())
	span.SetAttribute("secondaries", len(r.res.Secondaries()))

	return domain.PackageReport{
		OutputRoot:  params.OutputRoot,
		Primary:     r.res.Primary(),
		Secondaries: r.res.Secondaries(),
		Written:     r.written,
	}, nil
}

func (r *run) phase(ctx context.Context, name string, fn func() error) error {
	_, span := r.tracer.Start(ctx, name)
	defer span.End()

	before := len(r.written)
	if err := fn(); err != nil {
		span.RecordError(err)
		return zerr.With(err, "phase", name)
	}
	span.SetAttribute(ports.AttrWritten, len(r.written)-before)
	return nil
}

func (r *run) loadStamp() error {
	if r.params.StampData == "" {
		r.stamp = stamp.Passthrough()
		return nil
	}
	data, err := r.storage.ReadText(r.params.StampData)
	if err != nil {
		return err
	}
	r.stamp, err = stamp.FromStampData(data)
	return err
}

func (r *run) placeReadme() error {
	if r.params.Readme == "" {
		return nil
	}
	placement := r.placer.PlaceReadme(domain.Artifact{Kind: domain.KindReadme, Path: r.params.Readme})
	return r.copy(placement)
}

func (r *run) placeFesms(kind domain.ArtifactKind, paths []string) error {
	for _, path := range paths {
		placement := r.placer.PlaceFesm(r.res, domain.Artifact{Kind: kind, Path: path})
		if err := r.copy(placement); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) placeBundles() error {
	if err := r.storage.CreateDirectory(r.placer.BundlesDir()); err != nil {
		return err
	}
	for _, path := range r.params.Bundles {
		placement := r.placer.PlaceBundle(domain.Artifact{Kind: domain.KindBundle, Path: path})
		if err := r.storage.CopyFile(path, placement.Destination); err != nil {
			return err
		}
		r.written = append(r.written, placement.Destination)
	}
	return nil
}

// placeBuildOutputs writes declarations and plain metadata from the build root.
// Bundle index metadata is held back for placeBundleIndexMetadata. An output
// root inside the build root is skipped, so earlier runs are never repackaged.
func (r *run) placeBuildOutputs() error {
	files, err := r.storage.ListFilesRecursive(r.params.BuildRoot)
	if err != nil {
		return err
	}

	for _, path := range files {
		if domain.Within(r.params.OutputRoot, path) {
			continue
		}
		kind, ok := domain.ClassifyBuildOutput(path)
		if !ok {
			continue
		}
		artifact := domain.Artifact{Kind: kind, Path: path}

		switch kind {
		case domain.KindBundleIndexMetadata:
			r.bundleIndexMetadata = append(r.bundleIndexMetadata, artifact)
		case domain.KindMetadata:
			placement, err := r.placer.PlaceBuildOutput(r.res, artifact)
			if err != nil {
				return err
			}
			if err := r.copy(placement); err != nil {
				return err
			}
		default:
			placement, err := r.placer.PlaceBuildOutput(r.res, artifact)
			if err != nil {
				return err
			}
			content, err := r.storage.ReadText(path)
			if err != nil {
				return err
			}
			if err := r.write(placement.Destination, layout.StripAMDModule(content)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) placeSources() error {
	for _, path := range r.params.Sources {
		placement, err := r.placer.PlaceSource(domain.Artifact{Kind: domain.KindSource, Path: path})
		if err != nil {
			return err
		}
		content, err := r.storage.ReadText(path)
		if err != nil {
			return err
		}
		content = r.stamp.Apply(content)

		if filepath.Base(path) == domain.DescriptorFileName {
			content, _, err = r.rewriter.Rewrite(content)
			if err != nil {
				return zerr.With(err, "path", path)
			}
		}

		if err := r.write(placement.Destination, content); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) placeBundleIndexMetadata() error {
	for _, artifact := range r.bundleIndexMetadata {
		placement, err := r.placer.PlaceBuildOutput(r.res, artifact)
		if err != nil {
			return err
		}
		content, err := r.storage.ReadText(artifact.Path)
		if err != nil {
			return err
		}
		if err := r.write(placement.Destination, r.stamp.Apply(content)); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) synthesizeRedirects() error {
	secondaries := r.res.Secondaries()
	if len(secondaries) == 0 {
		return nil
	}

	banner := ""
	if r.params.License != "" {
		text, err := r.storage.ReadText(r.params.License)
		if err != nil {
			return err
		}
		banner = text
	}

	stubs, err := redirect.NewSynthesizer(r.params.OutputRoot, banner).Synthesize(secondaries)
	if err != nil {
		return err
	}
	for _, stub := range stubs {
		if err := r.write(stub.Path, stub.Content); err != nil {
			return err
		}
	}
	return nil
}

// copy copies a placed artifact verbatim, creating its directory first.
func (r *run) copy(placement domain.Placement) error {
	if err := r.storage.CreateDirectory(filepath.Dir(placement.Destination)); err != nil {
		return err
	}
	if err := r.storage.CopyFile(placement.Artifact.Path, placement.Destination); err != nil {
		return err
	}
	r.written = append(r.written, placement.Destination)
	return nil
}

// write writes text to dst, creating its directory first.
func (r *run) write(dst, text string) error {
	if err := r.storage.CreateDirectory(filepath.Dir(dst)); err != nil {
		return err
	}
	if err := r.storage.WriteText(dst, text); err != nil {
		return err
	}
	r.written = append(r.written, dst)
	return nil
}
