package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"spacyctl/internal/app"
)

type outdatedOptions struct {
	Model  string
	Format string
}

func newOutdatedCommand() *cobra.Command {
	opts := outdatedOptions{}
	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "Show installed models that are behind the latest release",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd, "model", "format")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOutdated(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", "", "Model name prefix filter")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "Report format (table, json, yaml)")

	return cmd
}

func runOutdated(ctx context.Context, cmd *cobra.Command, opts outdatedOptions) error {
	format, err := parseOutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Outdated(ctx, app.OutdatedRequest{
		Model:  resolveString(cmd, opts.Model, "model", "model"),
		Format: format,
	})
	if err != nil {
		return err
	}
	fmt.Print(string(result.Rendered))
	return nil
}
