package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/binlink/pkg/errors"
)

// Config is the fully merged binlink configuration
type Config struct {
	Layout Layout `koanf:"layout"`
	Link   Link   `koanf:"link"`
}

// Layout names the files and directories a run looks at
type Layout struct {
	Dependencies    string   `koanf:"dependencies"`
	BinDir          string   `koanf:"bindir"`
	Manifest        string   `koanf:"manifest"`
	ProjectManifest string   `koanf:"project"`
	ScopePrefix     string   `koanf:"scope"`
	Ignore          []string `koanf:"ignore"`
}

// Link controls how declarations are materialized
type Link struct {
	Overwrite bool `koanf:"overwrite"`
	DryRun    bool `koanf:"dryrun"`
}

// DependencyRoot returns the dependency root inside projectDir
func (c *Config) DependencyRoot(projectDir string) string {
	return filepath.Join(projectDir, c.Layout.Dependencies)
}

// BinDir returns the shared bin directory inside projectDir
func (c *Config) BinDir(projectDir string) string {
	return filepath.Join(c.DependencyRoot(projectDir), c.Layout.BinDir)
}

// ProjectManifestPath returns the top-level descriptor inside projectDir
func (c *Config) ProjectManifestPath(projectDir string) string {
	return filepath.Join(projectDir, c.Layout.ProjectManifest)
}

// IsIgnored reports whether a dependency root child is housekeeping, not a dependency.
// The bin directory is always ignored.
func (c *Config) IsIgnored(name string) bool {
	if name == c.Layout.BinDir {
		return true
	}
	for _, pattern := range c.Layout.Ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Validate checks that the layout can be used to build paths
func (c *Config) Validate() error {
	names := []struct {
		key   string
		value string
		// nested names may contain separators, e.g. "vendor/node_modules"
		nested bool
	}{
		{"layout.dependencies", c.Layout.Dependencies, true},
		{"layout.bindir", c.Layout.BinDir, false},
		{"layout.manifest", c.Layout.Manifest, false},
		{"layout.project", c.Layout.ProjectManifest, true},
	}
	for _, n := range names {
		if strings.TrimSpace(n.value) == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", n.key).
				WithDetail("key", n.key)
		}
		if !n.nested && strings.ContainsAny(n.value, `/\`) {
			return errors.Newf(errors.ErrConfigValid, "%s must be a plain name, got %q", n.key, n.value).
				WithDetail("key", n.key)
		}
	}
	if c.Layout.ScopePrefix == "" {
		return errors.New(errors.ErrConfigValid, "layout.scope must not be empty").
			WithDetail("key", "layout.scope")
	}
	for _, pattern := range c.Layout.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "layout.ignore pattern %q", pattern).
				WithDetail("key", "layout.ignore")
		}
	}
	return nil
}
