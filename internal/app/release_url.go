package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"spacyctl/internal/core"
)

// ReleaseURL constructs the release archive address for a model
// version. No network I/O and no install.
func (s Service) ReleaseURL(_ context.Context, req ReleaseURLRequest) (ReleaseURLResult, error) {
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return ReleaseURLResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("model name is required")
	}
	version := strings.TrimSpace(req.Version)
	if version == "" {
		return ReleaseURLResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("model version is required")
	}
	base := s.DownloadURL
	if base == "" {
		base = defaultDownloadURL
	}
	return ReleaseURLResult{URL: core.ReleaseArchiveURL(base, model, version)}, nil
}
