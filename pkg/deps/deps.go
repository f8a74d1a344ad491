// Package deps enumerates the installed dependencies under a dependency root.
//
// Direct children of the root are dependencies, except housekeeping names and
// the shared bin directory. Children whose name starts with the scope prefix
// are scope directories; their own children are the dependencies. Entries are
// yielded in directory listing order without reordering or deduplication.
package deps

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/binlink/pkg/config"
	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/arthur-debert/binlink/pkg/logging"
	"github.com/arthur-debert/binlink/pkg/types"
)

// Enumerator lists dependency entries through a types.FS
type Enumerator struct {
	fs  types.FS
	cfg *config.Config
}

// NewEnumerator creates an Enumerator using the layout from cfg
func NewEnumerator(fs types.FS, cfg *config.Config) *Enumerator {
	return &Enumerator{fs: fs, cfg: cfg}
}

// Entries yields every dependency under root. A non-nil error is yielded for
// a directory that cannot be listed; when that directory is root, iteration
// ends, otherwise it continues with the next root child.
func (e *Enumerator) Entries(root string) iter.Seq2[types.Entry, error] {
	return func(yield func(types.Entry, error) bool) {
		logger := logging.GetLogger("deps")

		children, err := e.fs.ReadDir(root)
		if err != nil {
			yield(types.Entry{}, errors.Wrap(err, errors.ErrDirRead, "cannot read dependency root").
				WithDetail("path", root))
			return
		}

		for _, child := range children {
			name := child.Name()
			if e.cfg.IsIgnored(name) {
				logger.Trace().Str("name", name).Msg("Skipping ignored entry")
				continue
			}

			if !strings.HasPrefix(name, e.cfg.Layout.ScopePrefix) {
				if !yield(e.entry(root, "", name), nil) {
					return
				}
				continue
			}

			scopeDir := filepath.Join(root, name)
			scoped, err := e.fs.ReadDir(scopeDir)
			if err != nil {
				if !yield(types.Entry{Scope: name}, errors.Wrapf(err, errors.ErrDirRead, "cannot read scope %s", name).
					WithDetail("path", scopeDir)) {
					return
				}
				continue
			}
			for _, member := range scoped {
				if e.cfg.IsIgnored(member.Name()) {
					logger.Trace().Str("scope", name).Str("name", member.Name()).Msg("Skipping ignored entry")
					continue
				}
				if !yield(e.entry(scopeDir, name, member.Name()), nil) {
					return
				}
			}
		}
	}
}

func (e *Enumerator) entry(parent, scope, name string) types.Entry {
	dir := filepath.Join(parent, name)
	return types.Entry{
		Name:         name,
		Scope:        scope,
		Dir:          dir,
		ManifestPath: filepath.Join(dir, e.cfg.Layout.Manifest),
	}
}
