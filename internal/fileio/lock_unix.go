//go:build !windows

package fileio

import (
	"os"

	"github.com/gofrs/flock"
)

// lockShared takes a non-blocking shared lock on an existing file.
// The returned release func unlocks and closes the lock handle.
func lockShared(path string) (func(), error) {
	return tryLock(flock.New(path, flock.SetFlag(os.O_RDONLY)), true)
}

// lockExclusive takes a non-blocking exclusive lock on path, creating the
// file if it does not exist yet.
func lockExclusive(path string) (func(), error) {
	fl := flock.New(path,
		flock.SetFlag(os.O_CREATE|os.O_WRONLY),
		flock.SetPermissions(filePerm),
	)
	return tryLock(fl, false)
}

func tryLock(fl *flock.Flock, shared bool) (func(), error) {
	var (
		ok  bool
		err error
	)
	if shared {
		ok, err = fl.TryRLock()
	} else {
		ok, err = fl.TryLock()
	}
	if err != nil {
		_ = fl.Close()
		return nil, err
	}
	if !ok {
		_ = fl.Close()
		return nil, errLocked
	}
	return func() { _ = fl.Close() }, nil
}
