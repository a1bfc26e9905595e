package app

import "spacyctl/internal/types"

type ListModelsRequest struct {
	Model      string
	Format     types.OutputFormat
	OutputPath string
}

type ListModelsResult struct {
	Report     types.Report
	Rendered   []byte
	OutputPath string
}

type OutdatedRequest struct {
	Model  string
	Format types.OutputFormat
}

type OutdatedResult struct {
	Report   types.Report
	Rendered []byte
}

type ReleaseURLRequest struct {
	Model   string
	Version string
}

type ReleaseURLResult struct {
	URL string
}
