package fileio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// filePerm is the permission used when the output file is created.
const filePerm os.FileMode = 0o644

// WriteLines replaces the content of path with one formatted value per line.
// Every line, including the last, ends with "\n".
//
// The content goes to a temporary file in the same directory that is then
// renamed over path, so a failed write leaves the previous content intact.
// Classified failures are returned as *model.FileError with Op = write.
func WriteLines(path string, values []float64) error {
	// The lock opens path for writing, so a read-only target fails here
	// even though the directory would allow the rename.
	release, err := lockExclusive(path)
	if err != nil {
		return Classify(model.OpWrite, path, err)
	}
	defer release()

	if err := writeAtomic(path, EncodeLines(values)); err != nil {
		return Classify(model.OpWrite, path, err)
	}
	return nil
}

// writeAtomic writes data to a temp file next to dest and renames it into
// place. The temp file is removed on every failure path.
func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".minmax-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, filePerm)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// EncodeLines renders values as the output file content.
func EncodeLines(values []float64) []byte {
	var buf bytes.Buffer
	for _, v := range values {
		buf.WriteString(FormatValue(v))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// FormatValue renders v with the fewest digits that round-trip.
// Values are written in fixed notation with at least one fractional digit
// (0 → "0.0", 0.25 → "0.25"); magnitudes below 1e-4 or at least 1e21 use
// exponent notation ("1e-05").
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
