// Package app implements the application layer for strata.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/strata/internal/adapters/watcher"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/generate"
	"go.trai.ch/strata/internal/engine/resolver"
	"go.trai.ch/strata/internal/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestLoader
	registries ports.RegistryOpener
	watcher    ports.Watcher
	logger     ports.Logger

	// workdir overrides the process working directory. Used for testing.
	workdir string
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	registries ports.RegistryOpener,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		manifests:  manifests,
		registries: registries,
		watcher:    w,
		logger:     log,
	}
}

// WithWorkdir pins manifest discovery to the given directory instead of the
// process working directory. This is primarily used for testing.
func (a *App) WithWorkdir(dir string) *App {
	a.workdir = dir
	return a
}

// EvalOptions configuration for the Eval method.
type EvalOptions struct {
	// Platforms restricts evaluation to a subset of the manifest's platform
	// list. Empty means all manifest platforms.
	Platforms []string
	// Parallelism bounds concurrent platform evaluations. Non-positive
	// defaults to the number of CPUs.
	Parallelism int
	// JSON switches output from the text listing to JSON.
	JSON bool
	// Color enables styled text output.
	Color bool
	// Watch re-evaluates whenever the manifest or registry changes.
	Watch bool
}

// Eval evaluates the full platform matrix of the discovered manifest and
// writes the resulting output tree to out.
func (a *App) Eval(ctx context.Context, out io.Writer, opts EvalOptions) error {
	project, err := a.locate()
	if err != nil {
		return err
	}

	if !opts.Watch {
		tree, err := a.evaluate(ctx, project, opts)
		if err != nil {
			return zerr.Wrap(err, domain.ErrEvaluationFailed.Error())
		}
		return a.renderTree(out, tree, opts)
	}

	return a.watchLoop(ctx, out, project, opts)
}

// ShowOptions configuration for the Show method.
type ShowOptions struct {
	// Category is the artifact category, "packages" or "environments".
	Category string
	// Platform is the target platform. Empty means the host platform.
	Platform string
	// Name is the artifact name within the category.
	Name string
	// Parallelism bounds concurrent platform evaluations.
	Parallelism int
	// JSON switches output from the text listing to JSON.
	JSON bool
	// Color enables styled text output.
	Color bool
}

// Show evaluates the manifest and writes the single artifact at
// <category>.<platform>.<name> to out.
func (a *App) Show(ctx context.Context, out io.Writer, opts ShowOptions) error {
	category, err := domain.ParseCategory(opts.Category)
	if err != nil {
		return err
	}

	platformID := opts.Platform
	if platformID == "" {
		platformID = domain.HostPlatform().String()
	}
	platform, err := domain.ParsePlatform(platformID)
	if err != nil {
		return err
	}

	project, err := a.locate()
	if err != nil {
		return err
	}

	tree, err := a.evaluate(ctx, project, EvalOptions{Parallelism: opts.Parallelism})
	if err != nil {
		return zerr.Wrap(err, domain.ErrEvaluationFailed.Error())
	}

	artifact, err := tree.Lookup(category, platform, opts.Name)
	if err != nil {
		return err
	}

	r := render.NewRenderer(opts.Color)
	switch v := artifact.(type) {
	case domain.PackageDefinition:
		if opts.JSON {
			return render.EncodePackageJSON(out, v)
		}
		return r.RenderPackage(out, opts.Name, v)
	case domain.EnvironmentDescriptor:
		if opts.JSON {
			return render.EncodeEnvironmentJSON(out, v)
		}
		return r.RenderEnvironment(out, opts.Name, v)
	default:
		return zerr.With(domain.ErrUnknownCategory, "category", opts.Category)
	}
}

// Platforms lists the registry's platform table, marking the platforms the
// manifest targets.
func (a *App) Platforms(_ context.Context, out io.Writer) error {
	project, err := a.locate()
	if err != nil {
		return err
	}

	manifest, err := a.manifests.Load(project.manifestPath)
	if err != nil {
		return err
	}

	registry, err := a.registries.Open(project.registryDir)
	if err != nil {
		return err
	}

	for _, platform := range registry.Platforms() {
		marker := ""
		if slices.Contains(manifest.Platforms, platform) {
			marker = "  (targeted)"
		}
		if _, err := io.WriteString(out, platform.String()+marker+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// project is a located strata project on disk.
type project struct {
	manifestPath string
	root         string
	registryDir  string
}

func (a *App) locate() (project, error) {
	cwd := a.workdir
	if cwd == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return project{}, err
		}
	}

	manifestPath, root, err := a.manifests.Discover(cwd)
	if err != nil {
		return project{}, err
	}

	return project{
		manifestPath: manifestPath,
		root:         root,
		registryDir:  domain.DefaultRegistryPath(root),
	}, nil
}

// evaluate runs one full evaluation: load the manifest, open the registry,
// and resolve the platform matrix.
func (a *App) evaluate(ctx context.Context, project project, opts EvalOptions) (*domain.OutputTree, error) {
	manifest, err := a.manifests.Load(project.manifestPath)
	if err != nil {
		return nil, err
	}

	registry, err := a.registries.Open(project.registryDir)
	if err != nil {
		return nil, err
	}

	targets, err := selectPlatforms(manifest.Platforms, opts.Platforms)
	if err != nil {
		return nil, err
	}

	return resolver.New(opts.Parallelism).Resolve(ctx, targets, generate.New(manifest), registry)
}

func (a *App) renderTree(out io.Writer, tree *domain.OutputTree, opts EvalOptions) error {
	if opts.JSON {
		return render.EncodeJSON(out, tree)
	}
	return render.NewRenderer(opts.Color).Render(out, tree)
}

// selectPlatforms narrows the manifest's platform list to the requested
// subset. Requesting a platform the manifest does not target is an error.
func selectPlatforms(declared []domain.Platform, requested []string) ([]domain.Platform, error) {
	if len(requested) == 0 {
		return declared, nil
	}

	targets := make([]domain.Platform, 0, len(requested))
	for _, id := range requested {
		platform, err := domain.ParsePlatform(id)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(declared, platform) {
			return nil, zerr.With(domain.ErrUnknownPlatform, "platform", id)
		}
		targets = append(targets, platform)
	}
	return targets, nil
}

// watchLoop evaluates once, then re-evaluates whenever a manifest or
// registry file changes. Evaluation failures are logged and the loop keeps
// running, so a half-saved manifest does not kill the session.
func (a *App) watchLoop(ctx context.Context, out io.Writer, project project, opts EvalOptions) error {
	evalOnce := func() {
		tree, err := a.evaluate(ctx, project, opts)
		if err != nil {
			a.logger.Error(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()))
			return
		}
		if err := a.renderTree(out, tree, opts); err != nil {
			a.logger.Error(err)
		}
	}

	evalOnce()

	if err := a.watcher.Start(ctx, project.root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	reload := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		for _, path := range paths {
			a.logger.Info("change detected: " + path)
		}
		select {
		case reload <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if isProjectFile(event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info("watching " + project.root + " for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reload:
			evalOnce()
		}
	}
}

// isProjectFile reports whether a changed path can affect evaluation: the
// manifest itself or any registry document.
func isProjectFile(path string) bool {
	switch filepath.Ext(path) {
	case ".hcl", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
