// Package app implements the application layer for ngpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/ngpack/internal/adapters/config"
	"go.trai.ch/ngpack/internal/adapters/detector"
	"go.trai.ch/ngpack/internal/adapters/telemetry"
	"go.trai.ch/ngpack/internal/adapters/tui"
	"go.trai.ch/ngpack/internal/adapters/watcher"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/ngpack/internal/engine/packager"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	storage  ports.Storage
	loader   ports.ManifestLoader
	logger   ports.Logger
	store    ports.PackageRecordStore
	digester ports.Digester
	renderer ports.Renderer
	live     tui.Factory
	watchers watcher.Factory
	settings config.Settings
	mode     detector.OutputMode
	now      func() time.Time
}

// New creates a new App instance.
func New(
	storage ports.Storage,
	loader ports.ManifestLoader,
	log ports.Logger,
	store ports.PackageRecordStore,
	digester ports.Digester,
	renderer ports.Renderer,
	settings config.Settings,
) *App {
	return &App{
		storage:  storage,
		loader:   loader,
		logger:   log,
		store:    store,
		digester: digester,
		renderer: renderer,
		settings: settings,
		mode:     detector.ModeAuto,
		now:      time.Now,
	}
}

// WithWatcherFactory sets how watch sessions open their watcher.
func (a *App) WithWatcherFactory(f watcher.Factory) *App {
	a.watchers = f
	return a
}

// WithLiveRenderer sets how runs in TUI mode create their renderer.
func (a *App) WithLiveRenderer(f tui.Factory) *App {
	a.live = f
	return a
}

// WithOutputMode sets the detected progress mode used when --progress is auto.
func (a *App) WithOutputMode(mode detector.OutputMode) *App {
	a.mode = mode
	return a
}

// WithClock replaces the clock used to timestamp package records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// EnableJSONLogs switches the logger to JSON output when it supports it.
func (a *App) EnableJSONLogs() {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(true)
	}
}

// PackageOptions configure a packaging run.
type PackageOptions struct {
	// Params are explicit run parameters; they override the manifest.
	Params domain.RunParams
	// Manifest is the manifest path. Empty means the NGPACK_MANIFEST default,
	// which may be absent.
	Manifest string
	// Progress is the --progress flag value.
	Progress string
}

// Package runs one packaging pass and records its result.
func (a *App) Package(ctx context.Context, opts PackageOptions) error {
	params, err := a.resolveParams(opts)
	if err != nil {
		return err
	}
	return a.packageOnce(ctx, params, opts.Progress)
}

// WatchOptions configure a watch session.
type WatchOptions struct {
	PackageOptions
	// Debounce overrides NGPACK_DEBOUNCE when positive.
	Debounce time.Duration
}

// Watch packages once, then repackages after every settled batch of input
// changes until ctx is done. Failed runs are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	params, err := a.resolveParams(opts.PackageOptions)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if a.watchers == nil {
		return zerr.With(domain.ErrWatchFailed, "reason", "no watcher available")
	}

	if err := a.packageOnce(ctx, params, opts.Progress); err != nil {
		a.logger.Error(err)
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	g, gctx := errgroup.WithContext(ctx)
	if err := w.Start(gctx, watchRoots(params)...); err != nil {
		return err
	}

	window := opts.Debounce
	if window <= 0 {
		window = a.settings.Debounce
	}
	debouncer := watcher.NewDebouncer(window)
	defer debouncer.Stop()

	a.logger.Info(fmt.Sprintf("watching for changes to %s", params.OutputRoot))

	g.Go(func() error {
		for event := range w.Events() {
			if domain.Within(params.OutputRoot, event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-debouncer.Ready():
				changed := debouncer.Take()
				if len(changed) == 0 {
					continue
				}
				a.logger.Info(fmt.Sprintf("%d changed path(s), repackaging", len(changed)))
				if err := a.packageOnce(gctx, params, opts.Progress); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// CleanOptions configure the clean command.
type CleanOptions struct {
	PackageOptions
	// All also removes the output root.
	All bool
}

// Clean removes the package record store and, with All, the output root.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	var errs error

	remove := func(path, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := a.storage.Remove(path); err != nil {
			errs = errors.Join(errs, err)
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(domain.StorePath(a.settings.StateDir), "package records")

	if opts.All {
		params, err := a.resolveParams(opts.PackageOptions)
		if err != nil {
			return errors.Join(errs, err)
		}
		if params.OutputRoot == "" {
			return errors.Join(errs, zerr.With(domain.ErrMissingRunParam, "param", "out"))
		}
		remove(params.OutputRoot, "output root "+params.OutputRoot)
	}

	return errs
}

// resolveParams merges explicit params over the manifest.
func (a *App) resolveParams(opts PackageOptions) (domain.RunParams, error) {
	path := opts.Manifest
	if path == "" {
		path = a.settings.Manifest
	}

	manifest, found, err := a.loader.Load(path)
	if err != nil {
		return domain.RunParams{}, err
	}
	if !found && opts.Manifest != "" {
		return domain.RunParams{}, zerr.With(domain.ErrManifestRead, "path", opts.Manifest)
	}
	return opts.Params.Merge(manifest), nil
}

func (a *App) packageOnce(ctx context.Context, params domain.RunParams, progress string) error {
	tracer, shutdown, err := a.tracer(ctx, progress)
	if err != nil {
		return err
	}

	report, err := packager.NewPackager(a.storage, tracer).Run(ctx, params)
	shutdown()
	if err != nil {
		return zerr.Wrap(err, domain.ErrPackageFailed.Error())
	}
	return a.record(report)
}

// tracer picks the tracer for the resolved progress mode. The returned
// shutdown releases any renderer and must run before the next log line.
func (a *App) tracer(ctx context.Context, progress string) (ports.Tracer, func(), error) {
	switch detector.ResolveMode(a.mode, progress) {
	case detector.ModeLinear:
		if a.renderer == nil {
			break
		}
		t := telemetry.NewOTelTracer("ngpack", telemetry.NewBridge(a.renderer))
		return t, func() { _ = t.Shutdown(context.WithoutCancel(ctx)) }, nil

	case detector.ModeTUI:
		if a.live == nil {
			break
		}
		r := a.live(ctx)
		if err := r.Start(ctx); err != nil {
			return nil, nil, err
		}
		t := telemetry.NewOTelTracer("ngpack", telemetry.NewBridge(r))
		return t, func() {
			_ = t.Shutdown(context.WithoutCancel(ctx))
			_ = r.Stop()
			if err := r.Wait(); err != nil {
				a.logger.Warn(fmt.Sprintf("progress display: %v", err))
			}
		}, nil

	default:
	}
	return telemetry.NewNoOpTracer(), func() {}, nil
}

// record stores the digest of a successful run and reports whether the
// output changed since the last one.
func (a *App) record(report domain.PackageReport) error {
	digest, err := a.digester.DigestFiles(report.Written)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDigestFailed.Error())
	}

	previous, err := a.store.Get(report.OutputRoot)
	if err != nil {
		return err
	}

	secondaries := make([]string, 0, len(report.Secondaries))
	for _, s := range report.Secondaries {
		secondaries = append(secondaries, s.String())
	}
	files := slices.Clone(report.Written)
	slices.Sort(files)
	files = slices.Compact(files)

	if previous != nil && previous.Digest == digest {
		a.logger.Info(fmt.Sprintf("package %s unchanged", report.OutputRoot))
	} else {
		a.logger.Info(fmt.Sprintf("packaged %s into %s (%d files)", report.Primary, report.OutputRoot, len(files)))
	}

	return a.store.Put(domain.PackageRecord{
		OutputRoot:           report.OutputRoot,
		PrimaryEntryPoint:    report.Primary.String(),
		SecondaryEntryPoints: secondaries,
		Files:                files,
		Digest:               digest,
		Timestamp:            a.now().UTC(),
	})
}

// watchRoots returns the directories holding the run's inputs, without
// duplicates or directories nested in another root.
func watchRoots(p domain.RunParams) []string {
	candidates := []string{p.BuildRoot, p.SourceRoot}
	for _, f := range slices.Concat(p.Fesms2015, p.Fesms5, p.Bundles, []string{p.Readme, p.StampData, p.License}) {
		if f != "" {
			candidates = append(candidates, filepath.Dir(f))
		}
	}

	var roots []string
	for _, c := range candidates {
		c = filepath.Clean(c)
		if slices.ContainsFunc(roots, func(r string) bool { return domain.Within(r, c) }) {
			continue
		}
		roots = slices.DeleteFunc(roots, func(r string) bool { return domain.Within(c, r) })
		roots = append(roots, c)
	}
	return roots
}
