// Package testutil provides utilities for testing binlink components.
//
// Key components:
//   - file helpers (CreateFile, CreateDir, CreateSymlink) that stop the test on error
//   - symlink assertions (AssertSymlink, AssertNoFile)
//   - Project: a real project directory under t.TempDir with a dependency
//     root and one manifest per installed dependency
//
// Linking tests use the real filesystem because afero's in-memory backend
// cannot hold symlinks.
package testutil
