package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacyctl/internal/types"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"list", "outdated", "url"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestListCommandFlags(t *testing.T) {
	cmd := newListCommand()
	for _, name := range []string{"model", "format", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestOutdatedCommandFlags(t *testing.T) {
	cmd := newOutdatedCommand()
	for _, name := range []string{"model", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestURLCommandFlags(t *testing.T) {
	cmd := newURLCommand()
	assert.NotNil(t, cmd.Flags().Lookup("version"))
}

func TestURLCommandRejectsBadVersionDuringParsing(t *testing.T) {
	cmd := newURLCommand()
	err := cmd.ParseFlags([]string{"--version", "v1.2"})
	require.Error(t, err)
	// The parser rejection maps to the parameter-error exit code.
	assert.Equal(t, 2, exitCodeForError(err))
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "nil cmd with value returns value", value: "explicit", expected: "explicit"},
		{name: "nil cmd empty value returns empty", value: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(nil, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFlagChangedNilCommand(t *testing.T) {
	assert.False(t, flagChanged(nil, "model"))
}

func TestBindCommandFlagsTracksActiveCommand(t *testing.T) {
	t.Cleanup(viper.Reset)

	list := newListCommand()
	outdated := newOutdatedCommand()

	// Bind in construction order, then re-bind the executing command
	// the way its PreRunE does. The shared "format" key must follow
	// the executing command's flag, not the last-bound one.
	require.NoError(t, bindCommandFlags(outdated, "model", "format"))
	require.NoError(t, bindCommandFlags(list, "model", "format", "output"))

	require.NoError(t, list.Flags().Set("format", "json"))
	assert.Equal(t, "json", viper.GetString("format"))
	assert.Equal(t, "table", outdated.Flags().Lookup("format").Value.String())
}

func TestBindCommandFlagsSkipsUnknownNames(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, bindCommandFlags(newListCommand(), "no-such-flag"))
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		value    string
		expected types.OutputFormat
		valid    bool
	}{
		{value: "table", expected: types.OutputFormatTable, valid: true},
		{value: "", expected: types.OutputFormatTable, valid: true},
		{value: "json", expected: types.OutputFormatJSON, valid: true},
		{value: "yaml", expected: types.OutputFormatYAML, valid: true},
		{value: "xml", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseOutputFormat(tt.value)
			if !tt.valid {
				require.Error(t, err)
				assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ---------- Exit code mapping tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "parameter error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("v1.2"),
			expected: 2,
		},
		{
			name: "output file already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(`File "out.txt" already exists.`),
			expected: 2,
		},
		{
			name: "fetch failure",
			err: errbuilder.New().
				WithCode(errbuilder.CodeUnavailable).
				WithMsg("failed to fetch model releases"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("missing"),
			expected: 5,
		},
		{
			name: "internal",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "flag parse rejection",
			err:      errors.New(`invalid argument "v1.2" for "--version" flag: v1.2`),
			expected: 2,
		},
		{
			name:     "unclassified error",
			err:      errors.New("boom"),
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}
