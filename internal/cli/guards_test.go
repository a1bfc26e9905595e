package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVersionString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		valid   bool
		message string
	}{
		{name: "1.2", value: "1.2", valid: true},
		{name: "2.0.1", value: "2.0.1", valid: true},
		// The pattern is anchored at the start only.
		{name: "1.2b", value: "1.2b", valid: true},
		// The rejected value itself is the message.
		{name: "v1.2", value: "v1.2", message: "v1.2"},
		{name: "1", value: "1", message: "1"},
		{name: "abc", value: "abc", message: "abc"},
		// An empty value cannot carry itself as the message; it keeps
		// the parameter-error code with a descriptive one.
		{name: "empty", value: "", message: "version must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateVersionString(tt.value)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.value, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Equal(t, tt.message, errorMessage(err))
		})
	}
}

func TestValidateNewOutputPathRejectsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	parsed, err := NewPath(path, PathConstraints{})
	require.NoError(t, err)

	_, err = ValidateNewOutputPath(parsed)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	assert.Equal(t, fmt.Sprintf("File %q already exists.", path), errorMessage(err))
}

func TestValidateNewOutputPathPassesDirectory(t *testing.T) {
	dir := t.TempDir()
	parsed, err := NewPath(dir, PathConstraints{})
	require.NoError(t, err)

	got, err := ValidateNewOutputPath(parsed)
	require.NoError(t, err)
	assert.Equal(t, parsed, got)
}

func TestValidateNewOutputPathPassesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new-report.txt")
	parsed, err := NewPath(path, PathConstraints{})
	require.NoError(t, err)

	got, err := ValidateNewOutputPath(parsed)
	require.NoError(t, err)
	// Path comes back unchanged.
	assert.Equal(t, parsed, got)
}
