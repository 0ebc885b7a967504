package model

import "fmt"

// AppError is the closed set of recoverable failures a pipeline run can
// produce. Exactly one of *FileError, *LineError or NormalizeError is
// returned per failed run; the unexported marker method keeps other
// packages from adding categories.
//
// Rendering goes through Render, which switches over every category.
type AppError interface {
	error
	appError()
}

// FileOp tells whether a FileError happened while reading or writing.
type FileOp string

const (
	// OpRead marks a failure to read the input file.
	OpRead FileOp = "read"

	// OpWrite marks a failure to write the output file.
	OpWrite FileOp = "write"
)

// String returns the string representation of FileOp.
func (o FileOp) String() string {
	return string(o)
}

// FileReason is the classified cause of a FileError. Only these three
// reasons are recoverable; every other OS failure stays outside the
// taxonomy.
type FileReason string

const (
	// ReasonInUse means the file is locked or busy.
	ReasonInUse FileReason = "already-in-use"

	// ReasonNotExist means the file (or a parent directory) does not exist.
	ReasonNotExist FileReason = "does-not-exist"

	// ReasonPermission means the process lacks the required access rights.
	ReasonPermission FileReason = "permission-denied"
)

// String returns the string representation of FileReason.
func (r FileReason) String() string {
	return string(r)
}

// Text returns the user-facing sentence for the reason.
func (r FileReason) Text() string {
	switch r {
	case ReasonInUse:
		return "Already in use."
	case ReasonNotExist:
		return "Does not exist."
	case ReasonPermission:
		return "Permission error."
	default:
		return string(r)
	}
}

// FileError reports a classified failure to read or write a file.
type FileError struct {
	Op     FileOp
	Path   string
	Reason FileReason
}

// NewFileError creates a FileError for the given operation, path and reason.
func NewFileError(op FileOp, path string, reason FileReason) *FileError {
	return &FileError{Op: op, Path: path, Reason: reason}
}

func (e *FileError) Error() string {
	if e.Op == OpWrite {
		return fmt.Sprintf("Error writing to file (%s): %s", e.Path, e.Reason.Text())
	}
	return fmt.Sprintf("Error reading file (%s): %s", e.Path, e.Reason.Text())
}

func (*FileError) appError() {}

// ParseErrorKind distinguishes the two ways a line can fail to parse.
type ParseErrorKind string

const (
	// ParseInvalidNumber means no numeric literal starts the text.
	ParseInvalidNumber ParseErrorKind = "invalid-number"

	// ParseTrailingInput means a literal was read but non-whitespace
	// text follows it.
	ParseTrailingInput ParseErrorKind = "trailing-input"
)

// ParseError describes why a single piece of text is not a number.
// For ParseInvalidNumber, Text is the original text; for
// ParseTrailingInput, Text is the unconsumed remainder.
type ParseError struct {
	Kind ParseErrorKind
	Text string
}

func (e *ParseError) Error() string {
	if e.Kind == ParseTrailingInput {
		return "Some input was not consumed: " + e.Text
	}
	return "Could not parse number from text: " + e.Text
}

// LineError pairs a ParseError with the 1-based line it occurred on.
type LineError struct {
	Line int
	Err  *ParseError
}

func (e *LineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Error on line %d", e.Line)
	}
	return fmt.Sprintf("Error on line %d: %s", e.Line, e.Err.Error())
}

// Unwrap exposes the ParseError to errors.As.
func (e *LineError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

func (*LineError) appError() {}

// NormalizeError is a degenerate-input failure of the normalizer.
type NormalizeError int

const (
	// ErrEmptyList: there are no values at all.
	ErrEmptyList NormalizeError = iota + 1

	// ErrSingletonList: a single value has no range.
	ErrSingletonList

	// ErrZeroRange: every value is equal, so max - min is zero.
	ErrZeroRange
)

func (e NormalizeError) Error() string {
	switch e {
	case ErrEmptyList:
		return "Cannot normalise an empty list."
	case ErrSingletonList:
		return "Cannot normalise a list with one value."
	case ErrZeroRange:
		return "Cannot normalise when all values are the same."
	default:
		return fmt.Sprintf("normalize error %d", int(e))
	}
}

func (NormalizeError) appError() {}

// Kind returns a stable machine-readable name for the error category.
// It is used as the "kind" field of JSON error output.
func Kind(err AppError) string {
	switch e := err.(type) {
	case *FileError:
		return "file-" + e.Op.String()
	case *LineError:
		return "line"
	case NormalizeError:
		return "normalize"
	default:
		return "unknown"
	}
}

// Render returns the human-readable message for an AppError.
// It never fails and depends only on the error value.
func Render(err AppError) string {
	switch e := err.(type) {
	case *FileError:
		return e.Error()
	case *LineError:
		return e.Error()
	case NormalizeError:
		return e.Error()
	case nil:
		return ""
	default:
		return e.Error()
	}
}
