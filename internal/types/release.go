package types

import "spacyctl/internal/shared"

// Release is one published model release as returned by the remote
// releases listing. Name holds the compound identifier
// "<model>-<version>".
type Release struct {
	Name string `json:"name"`
}

// ReleaseEntry is a release identifier split into its model name and
// version parts. The split is permissive: an identifier without a
// separator leaves Version empty.
type ReleaseEntry struct {
	Name    string
	Version string
}

// ReportRow is one line of the reconciliation report. Installed is nil
// when no same-named distribution is installed locally.
type ReportRow struct {
	Name      string  `json:"name" yaml:"name"`
	Installed *string `json:"installed_version" yaml:"installed_version"`
	Latest    string  `json:"latest_version" yaml:"latest_version"`
}

// Report is the reconciliation result: rows in ascending model-name
// order under a fixed display header.
type Report struct {
	Header []string    `json:"header" yaml:"header"`
	Rows   []ReportRow `json:"rows" yaml:"rows"`
}

// InstalledIndex maps normalized distribution names to installed
// version strings. It is a read-only snapshot of the local package
// registry taken once per invocation.
type InstalledIndex map[string]string

// Lookup returns the installed version for a distribution name,
// normalizing the name before the query.
func (i InstalledIndex) Lookup(name string) (string, bool) {
	version, ok := i[shared.NormalizePipName(name)]
	return version, ok
}
