package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "node_modules", cfg.Layout.Dependencies)
	assert.Equal(t, ".bin", cfg.Layout.BinDir)
	assert.Equal(t, "package.json", cfg.Layout.Manifest)
	assert.Equal(t, "package.json", cfg.Layout.ProjectManifest)
	assert.Equal(t, "@", cfg.Layout.ScopePrefix)
	assert.Contains(t, cfg.Layout.Ignore, ".DS_Store")
	assert.False(t, cfg.Link.Overwrite)
	assert.False(t, cfg.Link.DryRun)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		env       map[string]string
		overrides map[string]interface{}
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults_without_project_file",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "node_modules", cfg.Layout.Dependencies)
				assert.False(t, cfg.Link.Overwrite)
			},
		},
		{
			name: "toml_project_file",
			files: map[string]string{
				".binlink.toml": "[layout]\nbindir = \"bin\"\n\n[link]\noverwrite = true\n",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "bin", cfg.Layout.BinDir)
				assert.Equal(t, "node_modules", cfg.Layout.Dependencies)
				assert.True(t, cfg.Link.Overwrite)
			},
		},
		{
			name: "yaml_project_file",
			files: map[string]string{
				".binlink.yaml": "layout:\n  dependencies: vendor_modules\n  ignore:\n    - \"*.log\"\n",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "vendor_modules", cfg.Layout.Dependencies)
				assert.Equal(t, []string{"*.log"}, cfg.Layout.Ignore)
			},
		},
		{
			name: "toml_wins_over_yaml",
			files: map[string]string{
				".binlink.toml": "[layout]\nbindir = \"from-toml\"\n",
				".binlink.yaml": "layout:\n  bindir: from-yaml\n",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "from-toml", cfg.Layout.BinDir)
			},
		},
		{
			name:  "env_overrides_file",
			files: map[string]string{".binlink.toml": "[layout]\nbindir = \"bin\"\n"},
			env: map[string]string{
				"BINLINK_LAYOUT_BINDIR": "env-bin",
				"BINLINK_LAYOUT_IGNORE": ".DS_Store,*.tmp",
				"BINLINK_LINK_OVERWRITE": "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "env-bin", cfg.Layout.BinDir)
				assert.Equal(t, []string{".DS_Store", "*.tmp"}, cfg.Layout.Ignore)
				assert.True(t, cfg.Link.Overwrite)
			},
		},
		{
			name:      "overrides_win",
			env:       map[string]string{"BINLINK_LINK_DRYRUN": "false"},
			overrides: map[string]interface{}{"link.overwrite": true, "link.dryrun": true},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Link.Overwrite)
				assert.True(t, cfg.Link.DryRun)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(dir, tt.overrides)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("unparsable_project_file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".binlink.toml", "[layout\nbindir = ")

		_, err := Load(dir, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_bindir", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".binlink.toml", "[layout]\nbindir = \"a/b\"\n")

		_, err := Load(dir, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "layout.bindir", errors.GetErrorDetails(err)["key"])
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Default()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{"defaults_are_valid", func(cfg *Config) {}, false},
		{"nested_dependency_root_allowed", func(cfg *Config) { cfg.Layout.Dependencies = "web/node_modules" }, false},
		{"empty_dependencies", func(cfg *Config) { cfg.Layout.Dependencies = " " }, true},
		{"manifest_with_separator", func(cfg *Config) { cfg.Layout.Manifest = "x/package.json" }, true},
		{"empty_scope", func(cfg *Config) { cfg.Layout.ScopePrefix = "" }, true},
		{"bad_ignore_pattern", func(cfg *Config) { cfg.Layout.Ignore = []string{"[a-"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/p", "node_modules"), cfg.DependencyRoot("/p"))
	assert.Equal(t, filepath.Join("/p", "node_modules", ".bin"), cfg.BinDir("/p"))
	assert.Equal(t, filepath.Join("/p", "package.json"), cfg.ProjectManifestPath("/p"))
}

func TestIsIgnored(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	for _, name := range []string{".bin", ".DS_Store", "._foo", ".package-lock.json", "Thumbs.db"} {
		assert.True(t, cfg.IsIgnored(name), name)
	}
	for _, name := range []string{"mocha", "@babel", ".hidden-package"} {
		assert.False(t, cfg.IsIgnored(name), name)
	}
}
