// Package fileio reads the input file and writes the output file of the
// minmax pipeline.
//
// Both directions classify OS failures into the three recoverable
// model.FileReason values (already in use, does not exist, permission
// denied) and return them as *model.FileError. Any other OS failure is
// returned as an ordinary wrapped error so the caller can tell an expected,
// reportable failure from an unexpected fault.
//
// While a file is being read it holds a shared advisory lock, and while it
// is being written it holds an exclusive one (github.com/gofrs/flock on
// unix). Contention on that lock is reported as "already in use".
package fileio
