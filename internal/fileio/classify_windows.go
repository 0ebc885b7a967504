//go:build windows

package fileio

import (
	"errors"
	"syscall"
)

// Win32 error codes raised when another handle denies sharing or holds a
// byte-range lock on the file.
const (
	errSharingViolation syscall.Errno = 32
	errLockViolation    syscall.Errno = 33
)

func isInUse(err error) bool {
	return errors.Is(err, errSharingViolation) || errors.Is(err, errLockViolation)
}

func isNotExist(err error) bool {
	return false
}

func isPermission(err error) bool {
	return false
}
