package types

import "path"

// Entry is one installed dependency discovered under the dependency root
type Entry struct {
	// Name is the dependency's directory name, without any scope
	Name string

	// Scope is the scope directory name (e.g. "@babel"), empty when unscoped
	Scope string

	// Dir is the dependency directory
	Dir string

	// ManifestPath is the path of the dependency's descriptor file
	ManifestPath string
}

// FullName returns the package-style name, "@scope/name" for scoped entries.
func (e Entry) FullName() string {
	if e.Scope == "" {
		return e.Name
	}
	return path.Join(e.Scope, e.Name)
}

// Declaration is one executable a dependency asks to have linked
type Declaration struct {
	// Name is the link name inside the shared bin directory
	Name string

	// Path is relative to the owning dependency's directory
	Path string
}
