package adapters

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"spacyctl/internal/ports"
	"spacyctl/internal/shared"
	"spacyctl/internal/types"
)

const defaultPythonInterpreter = "python3"

// sitePackagesScript asks the interpreter for its package roots.
const sitePackagesScript = "import json, site; print(json.dumps(site.getsitepackages() + [site.getusersitepackages()]))"

// DistInfoRegistryAdapter snapshots the installed Python distributions
// by scanning site-packages for .dist-info and .egg-info metadata
// directories. When no roots are configured they are discovered through
// the Python interpreter.
type DistInfoRegistryAdapter struct {
	Python string
	Roots  []string
}

func NewDistInfoRegistryAdapter(python string, roots []string) DistInfoRegistryAdapter {
	interpreter := strings.TrimSpace(python)
	if interpreter == "" {
		interpreter = defaultPythonInterpreter
	}
	return DistInfoRegistryAdapter{Python: interpreter, Roots: roots}
}

func (a DistInfoRegistryAdapter) Snapshot(ctx context.Context) (types.InstalledIndex, error) {
	roots := a.Roots
	if len(roots) == 0 {
		discovered, err := a.discoverRoots(ctx)
		if err != nil {
			return nil, err
		}
		roots = discovered
	}
	index := types.InstalledIndex{}
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			// A missing or unreadable root is a normal state; other
			// roots may still hold metadata.
			log.Debug().Str("root", root).Err(err).Msg("skipping package root")
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name, version, ok := parseMetadataDirName(entry.Name())
			if !ok {
				continue
			}
			index[shared.NormalizePipName(name)] = version
		}
	}
	return index, nil
}

func (a DistInfoRegistryAdapter) discoverRoots(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, a.Python, "-c", sitePackagesScript)
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to discover site-packages roots").
			WithCause(shared.CommandError(output, err))
	}
	var roots []string
	if err := json.Unmarshal(output, &roots); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse site-packages roots").
			WithCause(err)
	}
	return roots, nil
}

// parseMetadataDirName extracts a distribution name and version from a
// metadata directory name such as "en_core_web_sm-2.2.0.dist-info" or
// "en_core_web_sm-2.2.0-py3.8.egg-info".
func parseMetadataDirName(name string) (string, string, bool) {
	switch {
	case strings.HasSuffix(name, ".dist-info"):
		stem := strings.TrimSuffix(name, ".dist-info")
		parts := strings.SplitN(stem, "-", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", "", false
		}
		return parts[0], parts[1], true
	case strings.HasSuffix(name, ".egg-info"):
		stem := strings.TrimSuffix(name, ".egg-info")
		parts := strings.SplitN(stem, "-", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return "", "", false
		}
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}

var _ ports.InstalledRegistryPort = DistInfoRegistryAdapter{}
