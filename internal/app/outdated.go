package app

import (
	"context"

	"spacyctl/internal/core"
)

// Outdated reconciles the model releases and keeps only the rows whose
// installed version is behind the latest release. A derived view of
// ListModels; no extra network calls.
func (s Service) Outdated(ctx context.Context, req OutdatedRequest) (OutdatedResult, error) {
	report, err := s.reconcile(ctx, req.Model)
	if err != nil {
		return OutdatedResult{}, err
	}
	outdated := core.SelectOutdated(report)
	rendered, err := core.RenderReport(outdated, req.Format)
	if err != nil {
		return OutdatedResult{}, err
	}
	return OutdatedResult{Report: outdated, Rendered: rendered}, nil
}
