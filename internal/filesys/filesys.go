// Package filesys provides the file system abstraction used by configopen.
// Production code goes through OsFS, which delegates to the standard library;
// tests substitute a double so that conditions the local disk cannot produce
// on demand (EAGAIN, ETIMEDOUT, EACCES as root) can be exercised.
package filesys

import "os"

// Opener is the surface the config opener needs. It is read-only on purpose:
// the file is never created or written.
type Opener interface {
	Open(string) (*os.File, error)
}

// OS returns a file system implementation that delegates to the standard library.
func OS() OsFS {
	return OsFS{}
}

// OsFS implements Opener against the local disk.
type OsFS struct{}

func (OsFS) Open(p string) (*os.File, error) { return os.Open(p) }

var _ Opener = OsFS{}
