// Package cli — root_test.go drives the cobra commands end to end inside a
// temporary working directory, since the input and output paths are fixed.
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// runCLI executes a fresh root command with args and captures its output.
func runCLI(t *testing.T, args ...string) (model.ExitCode, string, string) {
	t.Helper()

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	code := Run(root)
	return code, stdout.String(), stderr.String()
}

// inTempDir switches the working directory to a fresh temp dir and writes
// the given files into it.
func inTempDir(t *testing.T, files map[string]string) {
	t.Helper()
	t.Chdir(t.TempDir())
	for name, content := range files {
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}
}

// TestRoot_Success covers the one-to-five example end to end.
func TestRoot_Success(t *testing.T) {
	inTempDir(t, map[string]string{"foo.txt": "1\n2\n3\n4\n5"})

	code, stdout, stderr := runCLI(t)
	assert.Equal(t, model.ExitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	data, err := os.ReadFile("bar.txt")
	require.NoError(t, err)
	assert.Equal(t, "0.0\n0.25\n0.5\n0.75\n1.0\n", string(data))
}

// TestRoot_Failures verifies the exact stderr message and exit code of each
// failure category, and that bar.txt is never created.
func TestRoot_Failures(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
		code  model.ExitCode
	}{
		{
			name: "missing input",
			want: "Error reading file (foo.txt): Does not exist.\n",
			code: model.ExitFileError,
		},
		{
			name:  "bad line",
			files: map[string]string{"foo.txt": "1\n2\nabc\n3"},
			want:  "Error on line 3: Could not parse number from text: abc\n",
			code:  model.ExitParseError,
		},
		{
			name:  "trailing input",
			files: map[string]string{"foo.txt": "3.14abc"},
			want:  "Error on line 1: Some input was not consumed: abc\n",
			code:  model.ExitParseError,
		},
		{
			name:  "empty",
			files: map[string]string{"foo.txt": ""},
			want:  "Cannot normalise an empty list.\n",
			code:  model.ExitNormalizeError,
		},
		{
			name:  "singleton",
			files: map[string]string{"foo.txt": "9\n"},
			want:  "Cannot normalise a list with one value.\n",
			code:  model.ExitNormalizeError,
		},
		{
			name:  "zero range",
			files: map[string]string{"foo.txt": "1\n1\n"},
			want:  "Cannot normalise when all values are the same.\n",
			code:  model.ExitNormalizeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t, tt.files)

			code, stdout, stderr := runCLI(t)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout)
			assert.Equal(t, tt.want, stderr)

			_, err := os.Stat("bar.txt")
			assert.True(t, os.IsNotExist(err))
		})
	}
}

// TestRoot_JSONError verifies the JSON error shape selected by --json.
func TestRoot_JSONError(t *testing.T) {
	inTempDir(t, nil)

	code, _, stderr := runCLI(t, "--json")
	assert.Equal(t, model.ExitFileError, code)

	var out struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &out))
	assert.Equal(t, "file-read", out.Error.Kind)
	assert.Equal(t, "Error reading file (foo.txt): Does not exist.", out.Error.Message)
}

// TestRoot_SettingsFile verifies the settings file selects JSON output and
// that the --json=false flag overrides it.
func TestRoot_SettingsFile(t *testing.T) {
	inTempDir(t, map[string]string{".minmax.yaml": "output: json\n", "foo.txt": "4\n"})

	code, _, stderr := runCLI(t)
	assert.Equal(t, model.ExitNormalizeError, code)
	assert.True(t, json.Valid([]byte(stderr)), stderr)
	assert.Contains(t, stderr, `"kind": "normalize"`)

	code, _, stderr = runCLI(t, "--json=false")
	assert.Equal(t, model.ExitNormalizeError, code)
	assert.Equal(t, "Cannot normalise a list with one value.\n", stderr)
}

// TestRoot_InvalidSettings verifies a broken settings file is a general error.
func TestRoot_InvalidSettings(t *testing.T) {
	inTempDir(t, map[string]string{".minmax.json": `{"output": "xml"}`, "foo.txt": "1\n2\n"})

	code, _, stderr := runCLI(t)
	assert.Equal(t, model.ExitGeneralError, code)
	assert.Contains(t, stderr, "Error: invalid settings")

	_, err := os.Stat("bar.txt")
	assert.True(t, os.IsNotExist(err))
}

// TestRoot_InvalidLogLevel verifies --log-level is validated.
func TestRoot_InvalidLogLevel(t *testing.T) {
	inTempDir(t, map[string]string{"foo.txt": "1\n2\n"})

	code, _, stderr := runCLI(t, "--log-level", "loud")
	assert.Equal(t, model.ExitGeneralError, code)
	assert.Contains(t, stderr, "Error: invalid flags")
}

// TestRoot_Verbose verifies stage logging shows up on stderr.
func TestRoot_Verbose(t *testing.T) {
	inTempDir(t, map[string]string{"foo.txt": "1\n3\n"})

	code, _, stderr := runCLI(t, "--verbose")
	assert.Equal(t, model.ExitSuccess, code)
	assert.Contains(t, stderr, "read input")
	assert.Contains(t, stderr, "wrote output")
}

// TestRoot_RejectsArgs verifies that paths cannot be passed as arguments.
func TestRoot_RejectsArgs(t *testing.T) {
	inTempDir(t, map[string]string{"foo.txt": "1\n2\n"})

	code, _, stderr := runCLI(t, "other.txt")
	assert.Equal(t, model.ExitGeneralError, code)
	assert.Contains(t, stderr, "Error:")
}
