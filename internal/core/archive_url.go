package core

import (
	"fmt"
	"strings"
)

// ReleaseArchiveURL returns the published download address of a model
// release archive: <base>/<model>-<version>/<model>-<version>.tar.gz.
func ReleaseArchiveURL(base string, model string, version string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	release := fmt.Sprintf("%s-%s", model, version)
	return fmt.Sprintf("%s/%s/%s.tar.gz", trimmed, release, release)
}
