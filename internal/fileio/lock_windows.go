//go:build windows

package fileio

// On Windows byte-range locks are mandatory and would block our own writes
// through a second handle. Share-mode conflicts already surface as
// ERROR_SHARING_VIOLATION, which isInUse classifies.

func lockShared(string) (func(), error) {
	return func() {}, nil
}

func lockExclusive(string) (func(), error) {
	return func() {}, nil
}
