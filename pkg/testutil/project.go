package testutil

import (
	"path/filepath"
	"testing"
)

// Project is a throwaway project directory laid out the default way:
// package.json at the top and installed dependencies under node_modules.
type Project struct {
	t *testing.T

	// Dir is the project directory
	Dir string

	// Modules is the dependency root
	Modules string

	// BinDir is the shared bin directory; it is not created up front
	BinDir string
}

// NewProject creates a project with a top-level package.json and an empty
// node_modules directory.
func NewProject(t *testing.T) *Project {
	t.Helper()
	SkipOnWindows(t)

	dir := t.TempDir()
	CreateFile(t, dir, "package.json", `{"name":"fixture","version":"1.0.0"}`)
	modules := CreateDir(t, dir, "node_modules")

	return &Project{
		t:       t,
		Dir:     dir,
		Modules: modules,
		BinDir:  filepath.Join(modules, ".bin"),
	}
}

// AddPackage installs a dependency whose package.json is manifest. Scoped
// names such as "@scope/pkg" are nested one level down. Returns the
// dependency directory.
func (p *Project) AddPackage(name, manifest string) string {
	p.t.Helper()
	dir := CreateDir(p.t, p.Modules, filepath.FromSlash(name))
	CreateFile(p.t, dir, "package.json", manifest)
	return dir
}

// AddFile writes a file inside an installed dependency.
func (p *Project) AddFile(pkg, rel, content string) string {
	p.t.Helper()
	return CreateFile(p.t, filepath.Join(p.Modules, filepath.FromSlash(pkg)), filepath.FromSlash(rel), content)
}

// Link returns the path of a link in the shared bin directory.
func (p *Project) Link(name string) string {
	return filepath.Join(p.BinDir, name)
}
