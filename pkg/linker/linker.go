// Package linker materializes executable declarations as symlinks in the
// shared bin directory.
//
// Link targets are computed purely by path arithmetic: the declared path,
// relative to the dependency directory, is rebased to be relative to the bin
// directory. Targets are never checked for existence. Nothing relies on the
// process working directory.
package linker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/arthur-debert/binlink/pkg/logging"
	"github.com/arthur-debert/binlink/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Linker
type Options struct {
	// BinDir is the shared bin directory links are created in
	BinDir string

	// Overwrite removes whatever already sits at a link path, of any kind
	Overwrite bool

	// DryRun computes results without touching the filesystem
	DryRun bool
}

// Linker creates links for one run
type Linker struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger

	binDirReady bool
}

// New creates a Linker writing through fs
func New(fs types.FS, opts Options) *Linker {
	return &Linker{
		fs:     fs,
		opts:   opts,
		logger: logging.GetLogger("linker"),
	}
}

// Target returns the symlink content that, read from binDir, reaches
// relPath inside depDir.
func Target(binDir, depDir, relPath string) (string, error) {
	return filepath.Rel(binDir, filepath.Join(depDir, relPath))
}

// ValidateName rejects link names that would escape or alias the bin directory.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Newf(errors.ErrLinkNameValid, "invalid link name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrLinkNameValid, "link name %q must not contain a path separator", name)
	}
	return nil
}

// Link materializes one declaration of entry. Failures are returned in the
// result rather than as an error so a run can carry on with the next one.
func (l *Linker) Link(entry types.Entry, decl types.Declaration) types.LinkResult {
	result := types.LinkResult{
		Dependency:  entry,
		Declaration: decl,
	}
	logger := l.logger.With().
		Str("dependency", entry.FullName()).
		Str("name", decl.Name).
		Logger()

	if err := ValidateName(decl.Name); err != nil {
		return l.fail(logger, result, errors.Wrapf(err, errors.ErrLinkNameValid,
			"%s declares an unusable link", entry.FullName()))
	}

	result.LinkPath = filepath.Join(l.opts.BinDir, decl.Name)
	target, err := Target(l.opts.BinDir, entry.Dir, decl.Path)
	if err != nil {
		return l.fail(logger, result, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot compute target for %s", decl.Name))
	}
	result.Target = target

	_, err = l.fs.Lstat(result.LinkPath)
	switch {
	case err == nil:
		result.Existed = true
	case !os.IsNotExist(err):
		return l.fail(logger, result, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot inspect %s", result.LinkPath))
	}

	if result.Existed && !l.opts.Overwrite {
		result.Status = types.LinkSkipped
		logger.Debug().Str("link", result.LinkPath).Msg("Link exists, skipping")
		return result
	}

	if l.opts.DryRun {
		result.Status = types.LinkPlanned
		logger.Debug().Str("link", result.LinkPath).Str("target", target).Bool("replace", result.Existed).
			Msg("Dry run, link not written")
		return result
	}

	if err := l.ensureBinDir(); err != nil {
		return l.fail(logger, result, err)
	}

	if result.Existed {
		if err := l.fs.RemoveAll(result.LinkPath); err != nil {
			return l.fail(logger, result, errors.Wrapf(err, errors.ErrSymlinkRemove,
				"cannot remove existing %s", result.LinkPath))
		}
	}

	if err := l.fs.Symlink(target, result.LinkPath); err != nil {
		return l.fail(logger, result, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot link %s", decl.Name))
	}

	result.Status = types.LinkCreated
	if result.Existed {
		result.Status = types.LinkReplaced
	}
	logger.Info().Str("link", result.LinkPath).Str("target", target).Str("status", string(result.Status)).
		Msg("Link materialized")
	return result
}

func (l *Linker) ensureBinDir() *errors.Error {
	if l.binDirReady {
		return nil
	}
	if err := l.fs.MkdirAll(l.opts.BinDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", l.opts.BinDir).
			WithDetail("path", l.opts.BinDir)
	}
	l.binDirReady = true
	return nil
}

func (l *Linker) fail(logger zerolog.Logger, result types.LinkResult, err *errors.Error) types.LinkResult {
	result.Status = types.LinkFailed
	result.Err = err.WithDetail("name", result.Declaration.Name)
	logger.Debug().Err(err).Msg("Link failed")
	return result
}
