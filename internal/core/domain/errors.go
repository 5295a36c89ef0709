package domain

import "errors"

var (
	// ErrRepositoryNotFound is returned when a named repository does not exist in the registry.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrRepositoryAlreadyExists is returned when adding a repository whose name is already taken.
	ErrRepositoryAlreadyExists = errors.New("repository already exists")

	// ErrPackageNotFound is returned when a named package does not exist in the target repository.
	ErrPackageNotFound = errors.New("package not found")

	// ErrPackageAlreadyExists is returned when adding a package whose name is already taken.
	ErrPackageAlreadyExists = errors.New("package already exists")

	// ErrVersionNotFound is returned when a requested version record does not exist.
	ErrVersionNotFound = errors.New("version not found")

	// ErrDuplicateVersion is returned when appending a version identifier that already exists.
	ErrDuplicateVersion = errors.New("version already exists")

	// ErrChainBroken is returned when a base_version reference cannot be
	// resolved among the package's version records. It indicates registry
	// corruption, not a normal condition, and is fatal to the
	// reconstruction that hit it.
	ErrChainBroken = errors.New("version chain broken")

	// ErrValidationFailed is returned when a package directory fails validation.
	ErrValidationFailed = errors.New("package validation failed")

	// ErrMissingMetadataField is returned when required metadata fields are absent.
	ErrMissingMetadataField = errors.New("missing required metadata field")

	// ErrCycleDetected is returned when the dependency graph contains a cycle.
	ErrCycleDetected = errors.New("circular dependency detected")

	// ErrMetadataReadFailed is returned when a package metadata file cannot be read.
	ErrMetadataReadFailed = errors.New("failed to read metadata file")

	// ErrMetadataParseFailed is returned when a package metadata file cannot be parsed.
	ErrMetadataParseFailed = errors.New("failed to parse metadata file")

	// ErrStoreCreateFailed is returned when the registry directory cannot be created.
	ErrStoreCreateFailed = errors.New("failed to create registry directory")

	// ErrStoreReadFailed is returned when the registry document cannot be read.
	ErrStoreReadFailed = errors.New("failed to read registry document")

	// ErrStoreUnmarshalFailed is returned when the registry document cannot be unmarshaled.
	ErrStoreUnmarshalFailed = errors.New("failed to unmarshal registry document")

	// ErrStoreMarshalFailed is returned when the registry document cannot be marshaled.
	ErrStoreMarshalFailed = errors.New("failed to marshal registry document")

	// ErrStoreWriteFailed is returned when the registry document cannot be written.
	ErrStoreWriteFailed = errors.New("failed to write registry document")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = errors.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = errors.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file is present in the
	// directory hierarchy. Callers fall back to built-in defaults.
	ErrConfigNotFound = errors.New("could not find hatch-registry.yaml")

	// ErrPackageDirInvalid is returned when a package path does not exist or is not a directory.
	ErrPackageDirInvalid = errors.New("package directory does not exist or is not a directory")

	// ErrFileOpenFailed is returned when an artifact file cannot be opened.
	ErrFileOpenFailed = errors.New("failed to open file")

	// ErrFileHashFailed is returned when hashing an artifact file fails.
	ErrFileHashFailed = errors.New("failed to hash file content")
)
