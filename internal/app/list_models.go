package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"spacyctl/internal/core"
	"spacyctl/internal/types"
)

// ListModels reconciles the published model releases against the local
// package registry and renders the report. A failed fetch is returned
// as-is; once the fetch has succeeded the report path does not fail on
// upstream data shapes or registry problems.
func (s Service) ListModels(ctx context.Context, req ListModelsRequest) (ListModelsResult, error) {
	report, err := s.reconcile(ctx, req.Model)
	if err != nil {
		return ListModelsResult{}, err
	}
	rendered, err := core.RenderReport(report, req.Format)
	if err != nil {
		return ListModelsResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath != "" {
		if err := s.Reports.WriteReport(outputPath, rendered); err != nil {
			return ListModelsResult{}, err
		}
	}
	return ListModelsResult{Report: report, Rendered: rendered, OutputPath: outputPath}, nil
}

// reconcile performs the fetch, filter, split, sort, and installed
// cross-reference steps shared by ListModels and Outdated.
func (s Service) reconcile(ctx context.Context, model string) (types.Report, error) {
	s.Progress.Begin("reconcile model releases", 3)
	defer s.Progress.End()

	releases, err := s.Releases.FetchReleases(ctx)
	if err != nil {
		// Sentinel fetch failure: passed through unwrapped so the
		// caller dispatches on its code alone.
		return types.Report{}, err
	}
	s.Progress.Advance(1)

	filtered := core.FilterReleases(releases, model)
	entries := core.SplitReleases(filtered)
	core.SortEntries(entries)
	s.Progress.Advance(1)

	installed, err := s.Registry.Snapshot(ctx)
	if err != nil {
		// A registry snapshot failure degrades the report instead of
		// aborting it: every installed version comes up absent.
		log.Warn().Err(err).Msg("installed package registry unavailable, reporting without installed versions")
		installed = types.InstalledIndex{}
	}
	s.Progress.Advance(1)

	report := core.BuildReport(entries, installed)
	log.Debug().
		Int("releases", len(releases)).
		Int("rows", len(report.Rows)).
		Str("model", model).
		Msg("reconciled model releases")
	return report, nil
}
