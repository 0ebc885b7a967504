package fileio

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// errLocked is returned by the lock helpers when another process holds a
// conflicting lock on the file.
var errLocked = errors.New("file is locked by another process")

// Classify converts an OS error from a read or write of path into a
// *model.FileError when it matches one of the recoverable reasons.
// Any other error is returned wrapped with the operation and path, and is
// deliberately not an AppError.
func Classify(op model.FileOp, path string, err error) error {
	if err == nil {
		return nil
	}
	if reason, ok := reasonFor(err); ok {
		return model.NewFileError(op, path, reason)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}

// reasonFor maps err onto a FileReason. Lock contention and busy-file
// errnos come first, because a busy file can also surface as a
// permission error on some platforms.
func reasonFor(err error) (model.FileReason, bool) {
	switch {
	case errors.Is(err, errLocked), isInUse(err):
		return model.ReasonInUse, true
	case errors.Is(err, fs.ErrNotExist), isNotExist(err):
		return model.ReasonNotExist, true
	case errors.Is(err, fs.ErrPermission), isPermission(err):
		return model.ReasonPermission, true
	default:
		return "", false
	}
}
