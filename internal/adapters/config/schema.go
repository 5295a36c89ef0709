package config

// File represents the structure of the hatch-registry.yaml configuration
// file.
type File struct {
	// RegistryPath is the location of the registry JSON document.
	RegistryPath string `yaml:"registry_path"`

	// MetadataFile is the metadata filename looked up inside package
	// directories.
	MetadataFile string `yaml:"metadata_file"`

	// JSONLogs switches log output to JSON.
	JSONLogs bool `yaml:"json_logs"`
}
