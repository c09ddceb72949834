package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary: opening, reading, writing or removing segment files.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents client-side errors where the provided
	// data doesn't meet the system's requirements or constraints.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected system failures that don't fit
	// into other categories: bugs, assertion failures, or other programming
	// errors that shouldn't occur during normal operation.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Storage-specific error codes extend the base error taxonomy to handle the
// unique failure modes of the segment layer.
const (
	// ErrorCodePermissionDenied indicates insufficient permissions to access a resource.
	// This is distinct from generic IO errors because it has a specific resolution path:
	// the user needs to adjust file/directory permissions or run with elevated privileges.
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// ErrorCodeDiskFull indicates that the storage device has run out of space.
	ErrorCodeDiskFull ErrorCode = "DISK_FULL"

	// ErrorCodeFilesystemReadonly indicates that the filesystem is mounted read-only.
	ErrorCodeFilesystemReadonly ErrorCode = "FILESYSTEM_READONLY"
)

// Codec-specific error codes cover the record encode/decode boundary.
const (
	// ErrorCodeSerde indicates a record failed to decode: malformed JSON,
	// a truncated record, or an unrecognized command kind in the stream.
	ErrorCodeSerde ErrorCode = "SERDE_ERROR"

	// ErrorCodeUnknownCommandType indicates an index entry pointed at a byte
	// range that decoded to something other than a Set record. This always
	// signals on-disk corruption or an index/segment invariant violation.
	ErrorCodeUnknownCommandType ErrorCode = "UNKNOWN_COMMAND_TYPE"
)

// Index-specific error codes.
const (
	// ErrorCodeKeyNotFound indicates a remove of a key with no live entry in
	// the index. This is the one domain-level error spec.md distinguishes
	// from plain I/O failures.
	ErrorCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"
)
