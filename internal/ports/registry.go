package ports

import (
	"context"

	"spacyctl/internal/types"
)

// InstalledRegistryPort takes a read-only snapshot of the locally
// installed Python distributions.
type InstalledRegistryPort interface {
	Snapshot(ctx context.Context) (types.InstalledIndex, error)
}
