package adapters

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"spacyctl/internal/ports"
	"spacyctl/internal/shared"
	"spacyctl/internal/types"
)

// PipRegistryAdapter snapshots the installed Python distributions by
// invoking "pip list --format json" through the configured interpreter.
type PipRegistryAdapter struct {
	Python string
}

func NewPipRegistryAdapter(python string) PipRegistryAdapter {
	interpreter := strings.TrimSpace(python)
	if interpreter == "" {
		interpreter = defaultPythonInterpreter
	}
	return PipRegistryAdapter{Python: interpreter}
}

func (a PipRegistryAdapter) Snapshot(ctx context.Context) (types.InstalledIndex, error) {
	cmd := exec.CommandContext(ctx, a.Python, "-m", "pip", "list", "--format", "json")
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip list failed").
			WithCause(shared.CommandError(output, err))
	}
	return parsePipList(output)
}

func parsePipList(data []byte) (types.InstalledIndex, error) {
	var rows []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse pip list output").
			WithCause(err)
	}
	index := types.InstalledIndex{}
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			continue
		}
		index[shared.NormalizePipName(row.Name)] = row.Version
	}
	return index, nil
}

var _ ports.InstalledRegistryPort = PipRegistryAdapter{}
