package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacyctl/internal/types"
)

func sampleReport() types.Report {
	installed := "2.2.0"
	return types.Report{
		Header: ReportHeader(),
		Rows: []types.ReportRow{
			{Name: "de_core_news_sm", Latest: "2.3.0"},
			{Name: "en_core_web_sm", Installed: &installed, Latest: "2.3.1"},
		},
	}
}

func TestRenderTable(t *testing.T) {
	got, err := RenderReport(sampleReport(), types.OutputFormatTable)
	require.NoError(t, err)

	// Column widths are the widest cell plus two padding spaces; the
	// last column is unpadded.
	expected := fmt.Sprintf("%-17s%-19s%s\n", "spaCy model", "installed version", "latest version") +
		fmt.Sprintf("%-17s%-19s%s\n", "de_core_news_sm", "", "2.3.0") +
		fmt.Sprintf("%-17s%-19s%s\n", "en_core_web_sm", "2.2.0", "2.3.1")
	assert.Equal(t, expected, string(got))
}

func TestRenderTableIsDefaultFormat(t *testing.T) {
	explicit, err := RenderReport(sampleReport(), types.OutputFormatTable)
	require.NoError(t, err)
	fallback, err := RenderReport(sampleReport(), "")
	require.NoError(t, err)
	assert.Equal(t, string(explicit), string(fallback))
}

func TestRenderJSON(t *testing.T) {
	report := sampleReport()
	got, err := RenderReport(report, types.OutputFormatJSON)
	require.NoError(t, err)

	assert.Contains(t, string(got), `"installed_version": null`)

	var decoded types.Report
	require.NoError(t, json.Unmarshal(got, &decoded))
	if diff := cmp.Diff(report, decoded); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderYAML(t *testing.T) {
	got, err := RenderReport(sampleReport(), types.OutputFormatYAML)
	require.NoError(t, err)

	content := string(got)
	assert.Contains(t, content, "- spaCy model")
	assert.Contains(t, content, "installed_version: null")
	assert.Contains(t, content, "name: de_core_news_sm")
	assert.Contains(t, content, "installed_version: 2.2.0")
}

func TestRenderIdempotent(t *testing.T) {
	for _, format := range []types.OutputFormat{types.OutputFormatTable, types.OutputFormatJSON, types.OutputFormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			first, err := RenderReport(sampleReport(), format)
			require.NoError(t, err)
			second, err := RenderReport(sampleReport(), format)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := RenderReport(sampleReport(), "xml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "xml"))
}
