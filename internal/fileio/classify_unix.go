//go:build !windows

package fileio

import (
	"errors"
	"syscall"
)

func isInUse(err error) bool {
	return errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.ETXTBSY)
}

// ENOTDIR means a path component is a regular file, so the target cannot exist.
func isNotExist(err error) bool {
	return errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ENXIO)
}

func isPermission(err error) bool {
	return errors.Is(err, syscall.EROFS)
}
