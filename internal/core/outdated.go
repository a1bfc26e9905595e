package core

import (
	pep440 "github.com/aquasecurity/go-pep440-version"

	"spacyctl/internal/types"
)

// SelectOutdated keeps the rows whose installed version is present and
// older than the latest release. Row order is preserved.
func SelectOutdated(report types.Report) types.Report {
	var rows []types.ReportRow
	for _, row := range report.Rows {
		if row.Installed == nil {
			continue
		}
		if installedBehind(*row.Installed, row.Latest) {
			rows = append(rows, row)
		}
	}
	return types.Report{Header: report.Header, Rows: rows}
}

// installedBehind compares two version strings with PEP 440 semantics.
// When either side does not parse it falls back to plain string
// inequality.
func installedBehind(installed string, latest string) bool {
	installedVersion, err := pep440.Parse(installed)
	if err != nil {
		return installed != latest
	}
	latestVersion, err := pep440.Parse(latest)
	if err != nil {
		return installed != latest
	}
	return installedVersion.Compare(latestVersion) < 0
}
