package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"spacyctl/internal/app"
)

type urlOptions struct {
	Version string
}

func newURLCommand() *cobra.Command {
	opts := urlOptions{}
	cmd := &cobra.Command{
		Use:   "url MODEL",
		Short: "Print the release archive URL for a model version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runURL(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().Var(newVersionValue(&opts.Version), "version", "Model version (dotted numeric, e.g. 2.3.1)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func runURL(ctx context.Context, model string, opts urlOptions) error {
	service := newAppService()
	result, err := service.ReleaseURL(ctx, app.ReleaseURLRequest{
		Model:   model,
		Version: opts.Version,
	})
	if err != nil {
		return err
	}
	fmt.Println(result.URL)
	return nil
}
