// Package filesystem provides filesystem implementations for binlink.
//
// Every implementation of types.FS here is backed by spf13/afero. NewOS wraps
// the real operating-system filesystem; tests that only read can hand an
// afero.MemMapFs to NewAferoFS. Symlink support is detected from the backend.
package filesystem
