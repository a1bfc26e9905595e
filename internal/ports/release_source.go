package ports

import (
	"context"

	"spacyctl/internal/types"
)

// ReleaseSourcePort lists the published model releases from the remote
// source. A failed listing is a sentinel fetch failure; callers do not
// retry and do not distinguish causes.
type ReleaseSourcePort interface {
	FetchReleases(ctx context.Context) ([]types.Release, error)
}
