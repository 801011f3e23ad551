// Package filesystem provides the read-only filesystems emoticon data is
// loaded from: a data directory on disk, embedded builtin files, or an
// in-memory afero filesystem in tests.
package filesystem
