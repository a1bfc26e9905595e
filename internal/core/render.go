package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"spacyctl/internal/types"
)

// RenderReport renders a report in the requested output format. The
// table format aligns columns under the fixed header; json and yaml
// render absent installed versions as null.
func RenderReport(report types.Report, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputFormatTable, "":
		return renderTable(report), nil
	case types.OutputFormatJSON:
		return renderJSON(report)
	case types.OutputFormatYAML:
		return renderYAML(report)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
}

func renderTable(report types.Report) []byte {
	var buf bytes.Buffer
	writer := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for i, column := range report.Header {
		if i > 0 {
			fmt.Fprint(writer, "\t")
		}
		fmt.Fprint(writer, column)
	}
	fmt.Fprintln(writer)
	for _, row := range report.Rows {
		installed := ""
		if row.Installed != nil {
			installed = *row.Installed
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", row.Name, installed, row.Latest)
	}
	writer.Flush()
	return buf.Bytes()
}

func renderJSON(report types.Report) ([]byte, error) {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render report as json").
			WithCause(err)
	}
	return append(content, '\n'), nil
}

func renderYAML(report types.Report) ([]byte, error) {
	content, err := yaml.Marshal(report)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render report as yaml").
			WithCause(err)
	}
	return content, nil
}
