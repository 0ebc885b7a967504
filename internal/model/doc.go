// Package model defines the domain types and value objects for the
// minmax CLI.
//
// This package contains pure data structures with no external dependencies.
// Every value is created and dropped within a single pipeline run; nothing
// is persisted between runs.
//
// The package also defines exit codes (ExitCode), the closed error taxonomy
// of the pipeline (AppError and its three categories), and a custom error
// type (CLIError) that carries exit codes for proper OS process exit handling.
package model
