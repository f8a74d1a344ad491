// Package resolver runs a full linking pass over a project: it checks the
// project preconditions, enumerates installed dependencies, reads their
// executable declarations and materializes each one in the shared bin
// directory.
//
// Only precondition failures abort a run. A bad manifest, an unreadable scope
// or a refused symlink is recorded in the Report and the run moves on.
package resolver

import (
	"path/filepath"

	"github.com/arthur-debert/binlink/pkg/config"
	"github.com/arthur-debert/binlink/pkg/deps"
	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/arthur-debert/binlink/pkg/filesystem"
	"github.com/arthur-debert/binlink/pkg/linker"
	"github.com/arthur-debert/binlink/pkg/logging"
	"github.com/arthur-debert/binlink/pkg/manifest"
	"github.com/arthur-debert/binlink/pkg/types"
)

// Options configures a run
type Options struct {
	// ProjectDir holds the dependency root and the top-level descriptor
	ProjectDir string

	// Config defaults to the embedded defaults, FS to the OS filesystem
	Config *config.Config
	FS     types.FS

	// Observer, when set, receives every item as soon as it is recorded
	Observer func(Item)
}

// CheckPreconditions verifies the dependency root is a directory and the
// top-level descriptor exists.
func CheckPreconditions(fs types.FS, cfg *config.Config, projectDir string) error {
	root := cfg.DependencyRoot(projectDir)
	info, err := fs.Stat(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDependencyRootMissing, "can't find %s", cfg.Layout.Dependencies).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDependencyRootMissing, "%s is not a directory", cfg.Layout.Dependencies).
			WithDetail("path", root)
	}

	descriptor := cfg.ProjectManifestPath(projectDir)
	if _, err := fs.Stat(descriptor); err != nil {
		return errors.Wrapf(err, errors.ErrProjectManifestMissing, "can't find %s", cfg.Layout.ProjectManifest).
			WithDetail("path", descriptor)
	}
	return nil
}

// Run performs one linking pass. The returned error is non-nil only when a
// precondition fails, in which case nothing was touched.
func Run(opts Options) (*Report, error) {
	logger := logging.GetLogger("resolver")
	done := logging.LogOperationStart(logger, "link")
	defer done()

	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve project directory").
			WithDetail("path", opts.ProjectDir)
	}
	cfg := opts.Config
	if cfg == nil {
		if cfg, err = config.Default(); err != nil {
			return nil, err
		}
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}

	if err := CheckPreconditions(opts.FS, cfg, projectDir); err != nil {
		return nil, err
	}

	report := &Report{
		ProjectDir: projectDir,
		BinDir:     cfg.BinDir(projectDir),
		DryRun:     cfg.Link.DryRun,
	}
	record := func(item Item) {
		report.Items = append(report.Items, item)
		if opts.Observer != nil {
			opts.Observer(item)
		}
	}

	enumerator := deps.NewEnumerator(opts.FS, cfg)
	reader := manifest.NewReader(opts.FS)
	l := linker.New(opts.FS, linker.Options{
		BinDir:    report.BinDir,
		Overwrite: cfg.Link.Overwrite,
		DryRun:    cfg.Link.DryRun,
	})

	logger.Info().
		Str("root", cfg.DependencyRoot(projectDir)).
		Str("binDir", report.BinDir).
		Bool("overwrite", cfg.Link.Overwrite).
		Bool("dryRun", cfg.Link.DryRun).
		Msg("Starting link pass")

	for entry, err := range enumerator.Entries(cfg.DependencyRoot(projectDir)) {
		if err != nil {
			logger.Debug().Err(err).Msg("Enumeration error")
			record(Item{Err: err})
			continue
		}
		report.Dependencies++

		decls, err := reader.Declarations(entry)
		if err != nil {
			logger.Debug().Err(err).Str("dependency", entry.FullName()).Msg("Manifest error")
			record(Item{Err: err})
			continue
		}

		for _, decl := range decls {
			result := l.Link(entry, decl)
			record(Item{Link: &result})
		}
	}

	s := report.Summary()
	logger.Info().
		Int("dependencies", report.Dependencies).
		Int("created", s.Created).
		Int("replaced", s.Replaced).
		Int("skipped", s.Skipped).
		Int("planned", s.Planned).
		Int("failed", s.Failed).
		Int("errors", s.Errors).
		Msg("Link pass completed")
	if errs := report.Errors(); len(errs) > 0 {
		logger.Debug().Errs("problems", errs).Msg("Link pass reported problems")
	}

	return report, nil
}
