package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// paths returns input and output paths inside a fresh temp dir, writing
// content to the input when it is non-nil.
func paths(t *testing.T, content *string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, InputPath)
	out := filepath.Join(dir, OutputPath)
	if content != nil {
		require.NoError(t, os.WriteFile(in, []byte(*content), 0o644))
	}
	return in, out
}

func ptr(s string) *string { return &s }

// TestRun_Success covers the end-to-end example from one to five.
func TestRun_Success(t *testing.T) {
	in, out := paths(t, ptr("1\n2\n3\n4\n5"))

	require.NoError(t, Run(context.Background(), in, out, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n0.25\n0.5\n0.75\n1.0\n", string(data))
}

// TestRun_Failures verifies each failure category stops the run, is
// returned as the expected AppError, and leaves no output behind.
func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    string
		code    model.ExitCode
	}{
		{
			name:    "missing input",
			content: nil,
			want:    "", // depends on the temp path, filled in below
			code:    model.ExitFileError,
		},
		{
			name:    "first bad line",
			content: ptr("1\n2\nabc\n3x"),
			want:    "Error on line 3: Could not parse number from text: abc",
			code:    model.ExitParseError,
		},
		{
			name:    "trailing input",
			content: ptr("3.14abc\n"),
			want:    "Error on line 1: Some input was not consumed: abc",
			code:    model.ExitParseError,
		},
		{name: "empty", content: ptr(""), want: "Cannot normalise an empty list.", code: model.ExitNormalizeError},
		{name: "singleton", content: ptr("5\n"), want: "Cannot normalise a list with one value.", code: model.ExitNormalizeError},
		{name: "zero range", content: ptr("2\n2\n2\n"), want: "Cannot normalise when all values are the same.", code: model.ExitNormalizeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := paths(t, tt.content)

			err := Run(context.Background(), in, out, nil)
			require.Error(t, err)

			var appErr model.AppError
			require.True(t, errors.As(err, &appErr))
			want := tt.want
			if tt.content == nil {
				want = "Error reading file (" + in + "): Does not exist."
			}
			assert.Equal(t, want, model.Render(appErr))
			assert.Equal(t, tt.code, model.ExitCodeFor(appErr))

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "no output must be written")
		})
	}
}

// TestRun_WriteFailure verifies a write FileError when the output
// directory does not exist.
func TestRun_WriteFailure(t *testing.T) {
	in, _ := paths(t, ptr("1\n2\n"))
	out := filepath.Join(t.TempDir(), "missing", OutputPath)

	err := Run(context.Background(), in, out, nil)

	var fileErr *model.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, model.OpWrite, fileErr.Op)
	assert.Equal(t, model.ReasonNotExist, fileErr.Reason)
}

// TestRun_Cancelled verifies a cancelled context stops before writing.
func TestRun_Cancelled(t *testing.T) {
	in, out := paths(t, ptr("1\n2\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, in, out, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

// TestCheck_Clean reports a summary and no error for good input.
func TestCheck_Clean(t *testing.T) {
	in, out := paths(t, ptr("4\n-2\n10\n"))

	report, err := Check(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, 3, report.Summary.Count)
	assert.Equal(t, -2.0, report.Summary.Min)
	assert.Equal(t, 10.0, report.Summary.Max)
	assert.Empty(t, report.LineErrors)
	assert.NoError(t, report.Err())

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "check never writes output")
}

// TestCheck_CollectsAllBadLines verifies every bad line is reported while
// Err still returns the first one.
func TestCheck_CollectsAllBadLines(t *testing.T) {
	in, _ := paths(t, ptr("1\nx\n2\n3y\n"))

	report, err := Check(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Lines)
	require.Len(t, report.LineErrors, 2)
	assert.Equal(t, 2, report.LineErrors[0].Line)
	assert.Equal(t, 4, report.LineErrors[1].Line)
	assert.Equal(t, "Error on line 2: Could not parse number from text: x", report.Err().Error())
}

// TestCheck_Degenerate surfaces normalize errors through Err.
func TestCheck_Degenerate(t *testing.T) {
	in, _ := paths(t, ptr("7\n7\n"))

	report, err := Check(context.Background(), in, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, report.Err(), model.ErrZeroRange)
}

// TestCheck_MissingInput returns the file error directly.
func TestCheck_MissingInput(t *testing.T) {
	in, _ := paths(t, nil)

	_, err := Check(context.Background(), in, nil)

	var fileErr *model.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, model.ReasonNotExist, fileErr.Reason)
}
