// Package types defines the core types and interfaces used throughout binlink.
// This includes the FS interface every component performs I/O through, and
// the transient data structures of a run: Entry, Declaration and LinkResult.
package types
