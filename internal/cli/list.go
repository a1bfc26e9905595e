package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"spacyctl/internal/app"
	"spacyctl/internal/types"
)

type listOptions struct {
	Model  string
	Format string
	Output Path
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published spaCy model releases and installed versions",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd, "model", "format", "output")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", "", "Model name prefix filter")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "Report format (table, json, yaml)")
	cmd.Flags().Var(newOutputPathValue(&opts.Output), "output", "Write the rendered report to a new file")

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	format, err := parseOutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	if err != nil {
		return err
	}
	outputPath, err := resolveOutputPath(cmd, opts.Output, "output", "output")
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.ListModels(ctx, app.ListModelsRequest{
		Model:      resolveString(cmd, opts.Model, "model", "model"),
		Format:     format,
		OutputPath: outputPath,
	})
	if err != nil {
		return err
	}
	fmt.Print(string(result.Rendered))
	return nil
}

func parseOutputFormat(value string) (types.OutputFormat, error) {
	switch types.OutputFormat(value) {
	case types.OutputFormatTable, "":
		return types.OutputFormatTable, nil
	case types.OutputFormatJSON:
		return types.OutputFormatJSON, nil
	case types.OutputFormatYAML:
		return types.OutputFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", value))
	}
}
