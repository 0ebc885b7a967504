package fileio

import (
	"os"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// ReadText returns the entire content of path as text.
//
// Classified failures are returned as *model.FileError with Op = read.
// The lock and the file handle are released before ReadText returns,
// on every path.
func ReadText(path string) (string, error) {
	release, err := lockShared(path)
	if err != nil {
		return "", Classify(model.OpRead, path, err)
	}
	defer release()

	// os.ReadFile handles the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Classify(model.OpRead, path, err)
	}
	return string(data), nil
}
