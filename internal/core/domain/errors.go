package domain

import "go.trai.ch/zerr"

var (
	// ErrUnrecognizedBundleIndexExtension is returned when a bundle index is neither a declaration nor metadata.
	ErrUnrecognizedBundleIndexExtension = zerr.New("bundle index files should be .d.ts or .metadata.json")

	// ErrDescriptorParse is returned when the package descriptor is not well-formed JSON.
	ErrDescriptorParse = zerr.New("failed to parse package descriptor")

	// ErrDescriptorMissingName is returned when the package descriptor has no string name field.
	ErrDescriptorMissingName = zerr.New("package descriptor has no name")

	// ErrDescriptorUpdate is returned when a pointer field cannot be written into the descriptor.
	ErrDescriptorUpdate = zerr.New("failed to update package descriptor")

	// ErrStampFieldMissing is returned when stamp data lacks the version key.
	ErrStampFieldMissing = zerr.New("stamp data has no version field")

	// ErrNoPrimaryEntryPoint is returned when a bundle index is relocated before any FESM was placed.
	ErrNoPrimaryEntryPoint = zerr.New("no primary entry point resolved")

	// ErrPathOutsideRoot is returned when an artifact is not located under its declared root.
	ErrPathOutsideRoot = zerr.New("artifact path is outside its root")

	// ErrMissingRunParam is returned when a required run parameter is empty.
	ErrMissingRunParam = zerr.New("missing required run parameter")

	// ErrInvalidParamsFile is returned when a positional params file has the wrong shape.
	ErrInvalidParamsFile = zerr.New("invalid params file")

	// ErrStorageCreateDir is returned when an output directory cannot be created.
	ErrStorageCreateDir = zerr.New("failed to create directory")

	// ErrStorageRead is returned when a file cannot be read.
	ErrStorageRead = zerr.New("failed to read file")

	// ErrStorageWrite is returned when a file cannot be written.
	ErrStorageWrite = zerr.New("failed to write file")

	// ErrStorageCopy is returned when a file cannot be copied.
	ErrStorageCopy = zerr.New("failed to copy file")

	// ErrStorageList is returned when a directory tree cannot be listed.
	ErrStorageList = zerr.New("failed to list files")

	// ErrStorageRemove is returned when a path cannot be removed.
	ErrStorageRemove = zerr.New("failed to remove path")

	// ErrManifestRead is returned when the manifest file cannot be read.
	ErrManifestRead = zerr.New("failed to read manifest")

	// ErrManifestParse is returned when the manifest file cannot be parsed.
	ErrManifestParse = zerr.New("failed to parse manifest")

	// ErrSettingsParse is returned when environment settings cannot be parsed.
	ErrSettingsParse = zerr.New("failed to parse environment settings")

	// ErrPackageFailed is returned when a packaging run aborts.
	ErrPackageFailed = zerr.New("packaging failed")

	// ErrDigestFailed is returned when the output digest cannot be computed.
	ErrDigestFailed = zerr.New("failed to compute package digest")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create package record store directory")

	// ErrStoreReadFailed is returned when a package record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read package record")

	// ErrStoreUnmarshalFailed is returned when a package record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal package record")

	// ErrStoreMarshalFailed is returned when a package record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal package record")

	// ErrStoreWriteFailed is returned when a package record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write package record")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch inputs")
)
