package app

import (
	"spacyctl/internal/adapters"
	"spacyctl/internal/ports"
	"spacyctl/internal/types"
)

const defaultDownloadURL = "https://github.com/explosion/spacy-models/releases/download"

// Service orchestrates the reconciliation ports. All state is
// request-scoped; a Service value holds configuration and stateless
// adapters only and is safe to reuse across invocations.
type Service struct {
	Releases    ports.ReleaseSourcePort
	Registry    ports.InstalledRegistryPort
	Progress    ports.ProgressScopePort
	Reports     ports.ReportWriterPort
	DownloadURL string
}

// Config selects the remote endpoint, the registry backend, and the
// interpreter used for registry discovery. Zero values fall back to
// the published spacy-models endpoints, the dist-info backend, and
// python3.
type Config struct {
	ReleasesURL     string
	DownloadURL     string
	HTTPTimeoutSec  int
	RegistryBackend types.RegistryBackend
	Python          string
	SitePackages    []string
}

func NewService(cfg Config) Service {
	var registry ports.InstalledRegistryPort
	switch cfg.RegistryBackend {
	case types.RegistryBackendPip:
		registry = adapters.NewPipRegistryAdapter(cfg.Python)
	default:
		registry = adapters.NewDistInfoRegistryAdapter(cfg.Python, cfg.SitePackages)
	}
	downloadURL := cfg.DownloadURL
	if downloadURL == "" {
		downloadURL = defaultDownloadURL
	}
	return Service{
		Releases:    adapters.NewGitHubReleasesAdapter(cfg.ReleasesURL, cfg.HTTPTimeoutSec),
		Registry:    registry,
		Progress:    adapters.NewNullProgressAdapter(),
		Reports:     adapters.NewReportFileAdapter(),
		DownloadURL: downloadURL,
	}
}
