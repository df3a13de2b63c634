package domain

import "go.trai.ch/zerr"

// Errors that refine a broader kind wrap it, so errors.Is matches both the
// specific error and its kind.
var (
	// ErrDescriptorLoad is returned when a descriptor document cannot be fetched, read or parsed.
	ErrDescriptorLoad = zerr.New("failed to load descriptor")

	// ErrEmptyDescriptor is returned when a descriptor source yields no content.
	ErrEmptyDescriptor = zerr.Wrap(ErrDescriptorLoad, "descriptor is empty")

	// ErrUnknownDescriptorSource is returned when a builtin descriptor name is not embedded in the binary.
	ErrUnknownDescriptorSource = zerr.Wrap(ErrDescriptorLoad, "unknown descriptor source")

	// ErrDuplicateEntry is returned when a document declares the same entry name twice.
	ErrDuplicateEntry = zerr.Wrap(ErrDescriptorLoad, "duplicate entry")

	// ErrUnsupportedTag is returned when a descriptor carries a YAML tag outside the core schema.
	ErrUnsupportedTag = zerr.Wrap(ErrDescriptorLoad, "unsupported YAML tag")

	// ErrMalformedDescriptor is returned when a descriptor does not have the entry/attribute shape.
	ErrMalformedDescriptor = zerr.Wrap(ErrDescriptorLoad, "malformed descriptor")

	// ErrUnknownEntry is returned when a requested entry name is absent from the document.
	ErrUnknownEntry = zerr.New("unknown entry")

	// ErrUnknownRecordKind is returned when a record kind has no registered constructor.
	ErrUnknownRecordKind = zerr.New("unknown record kind")

	// ErrInvalidRecord is returned when an entry cannot be turned into a record.
	ErrInvalidRecord = zerr.New("invalid record")

	// ErrMissingField is returned when a required attribute is absent from an entry.
	ErrMissingField = zerr.Wrap(ErrInvalidRecord, "missing required field")

	// ErrFieldType is returned when an attribute holds a value of the wrong kind.
	ErrFieldType = zerr.Wrap(ErrInvalidRecord, "attribute has wrong type")

	// ErrUnsupportedPackageManager is returned when a package manager is not in the supported set.
	ErrUnsupportedPackageManager = zerr.New("unsupported package manager")

	// ErrUnreachableServer is returned when the monitoring server does not answer the reachability probe.
	ErrUnreachableServer = zerr.New("unable to connect to server")

	// ErrNoEntitySelected is returned when neither a person nor an operating system was requested.
	ErrNoEntitySelected = zerr.New("no entry selected, use --name or --operating-system")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened for appending.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrInvalidModule is returned when a monitoring module name cannot be used as a file name.
	ErrInvalidModule = zerr.New("invalid module name")

	// ErrUnitRenderFailed is returned when a service unit cannot be rendered.
	ErrUnitRenderFailed = zerr.New("failed to render unit")
)

// Annotate attaches metadata to a sentinel error. The sentinel stays in the
// chain, unlike zerr.With on the sentinel itself which copies it.
func Annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
