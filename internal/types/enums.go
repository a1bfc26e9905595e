package types

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

type RegistryBackend string

const (
	RegistryBackendDistInfo RegistryBackend = "dist-info"
	RegistryBackendPip      RegistryBackend = "pip"
)
