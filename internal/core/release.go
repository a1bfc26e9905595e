package core

import (
	"sort"
	"strings"

	"spacyctl/internal/types"
)

// releaseSeparator splits a compound release identifier into its model
// name and version parts.
const releaseSeparator = "-"

// ReportHeader returns the fixed three-column display header.
func ReportHeader() []string {
	return []string{"spaCy model", "installed version", "latest version"}
}

// ParseReleaseName splits a compound release identifier
// "<model>-<version>" on its first separator. The split is permissive:
// an identifier without a separator yields an empty version, an
// identifier with several separators keeps everything after the first
// one as the version.
func ParseReleaseName(identifier string) types.ReleaseEntry {
	parts := strings.SplitN(identifier, releaseSeparator, 2)
	entry := types.ReleaseEntry{Name: parts[0]}
	if len(parts) == 2 {
		entry.Version = parts[1]
	}
	return entry
}

// FilterReleases keeps the releases whose full identifier starts with
// the given prefix. An empty prefix keeps everything.
func FilterReleases(releases []types.Release, prefix string) []types.Release {
	if prefix == "" {
		return releases
	}
	var kept []types.Release
	for _, release := range releases {
		if strings.HasPrefix(release.Name, prefix) {
			kept = append(kept, release)
		}
	}
	return kept
}

// SplitReleases parses each release identifier into a ReleaseEntry,
// preserving response order.
func SplitReleases(releases []types.Release) []types.ReleaseEntry {
	entries := make([]types.ReleaseEntry, 0, len(releases))
	for _, release := range releases {
		entries = append(entries, ParseReleaseName(release.Name))
	}
	return entries
}

// SortEntries orders entries ascending by model name. The sort is
// stable with respect to response order.
func SortEntries(entries []types.ReleaseEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// BuildReport cross-references sorted release entries against the
// installed index. A lookup miss leaves the installed version absent;
// it is never an error.
func BuildReport(entries []types.ReleaseEntry, installed types.InstalledIndex) types.Report {
	rows := make([]types.ReportRow, 0, len(entries))
	for _, entry := range entries {
		row := types.ReportRow{Name: entry.Name, Latest: entry.Version}
		if version, ok := installed.Lookup(entry.Name); ok {
			row.Installed = &version
		}
		rows = append(rows, row)
	}
	return types.Report{Header: ReportHeader(), Rows: rows}
}
