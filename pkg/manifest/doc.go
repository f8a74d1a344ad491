// Package manifest reads the executable declarations out of a dependency's
// descriptor file.
//
// Only the "bin" field is interpreted. It may be absent or null (no
// executables), a single path string (one executable named after the
// dependency), or an object mapping link names to paths. Any other shape is
// reported as ErrBinInvalid. Paths are relative to the dependency directory.
package manifest
