package ports

// ReportWriterPort persists a rendered report to a new file. The write
// must refuse to clobber an existing file.
type ReportWriterPort interface {
	WriteReport(path string, content []byte) error
}
