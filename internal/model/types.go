package model

import (
	"errors"
	"fmt"
)

// ExitCode defines the process exit codes returned by the CLI.
// These codes allow scripts and CI systems to programmatically determine
// which stage of the pipeline failed.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred. Unclassified
	// I/O faults and invalid settings end up here.
	ExitGeneralError ExitCode = 1

	// ExitFileError indicates the input could not be read or the output
	// could not be written for one of the classified FileReason values.
	ExitFileError ExitCode = 2

	// ExitParseError indicates a line of the input is not a number.
	ExitParseError ExitCode = 3

	// ExitNormalizeError indicates the parsed values cannot be normalized.
	ExitNormalizeError ExitCode = 4
)

// ExitCodeFor maps an AppError category to its exit code.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err AppError) ExitCode {
	switch err.(type) {
	case nil:
		return ExitSuccess
	case *FileError:
		return ExitFileError
	case *LineError:
		return ExitParseError
	case NormalizeError:
		return ExitNormalizeError
	default:
		return ExitGeneralError
	}
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// FromPipelineError converts an error returned by the pipeline into a
// CLIError. AppError values keep their rendered text as the message and get
// the exit code of their category; anything else is an unclassified fault
// and maps to ExitGeneralError.
func FromPipelineError(err error) *CLIError {
	if err == nil {
		return nil
	}
	var appErr AppError
	if errors.As(err, &appErr) {
		return WrapCLIError(ExitCodeFor(appErr), Render(appErr), err)
	}
	return WrapCLIError(ExitGeneralError, "unexpected failure", err)
}
