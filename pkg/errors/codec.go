package errors

import stdErrors "errors"

// ErrUnknownCommandType is the sentinel wrapped by NewUnknownCommandTypeError.
// Get raises it when an index entry points at bytes that decode to
// anything other than a Set record — always an on-disk corruption signal
// (spec.md §4.6 step 3, §7).
var ErrUnknownCommandType = stdErrors.New("unknown command type")

// CodecError is a specialized error type for record encode/decode failures.
// It embeds baseError to inherit standard error functionality, then adds
// the stream position needed to locate the offending bytes on disk.
type CodecError struct {
	*baseError

	// generation identifies which segment the offending bytes live in.
	generation uint64
	// offset is the byte position within the segment where decoding started.
	offset int64
	// operation names what the codec was doing: "Decode", "Encode".
	operation string
}

// NewCodecError creates a new codec-specific error.
func NewCodecError(err error, code ErrorCode, msg string) *CodecError {
	return &CodecError{baseError: NewBaseError(err, code, msg)}
}

// WithGeneration records which segment was being decoded.
func (ce *CodecError) WithGeneration(generation uint64) *CodecError {
	ce.generation = generation
	return ce
}

// WithOffset records the byte offset where decoding started.
func (ce *CodecError) WithOffset(offset int64) *CodecError {
	ce.offset = offset
	return ce
}

// WithOperation records what codec operation was being performed.
func (ce *CodecError) WithOperation(operation string) *CodecError {
	ce.operation = operation
	return ce
}

// Generation returns the segment generation involved in the error.
func (ce *CodecError) Generation() uint64 {
	return ce.generation
}

// Offset returns the byte offset where decoding started.
func (ce *CodecError) Offset() int64 {
	return ce.offset
}

// Operation returns the codec operation that was being performed.
func (ce *CodecError) Operation() string {
	return ce.operation
}

// NewDecodeError wraps a malformed-record failure encountered while
// streaming a segment (recovery) or decoding a single record (Get).
func NewDecodeError(err error, generation uint64, offset int64) *CodecError {
	return NewCodecError(err, ErrorCodeSerde, "failed to decode record").
		WithGeneration(generation).
		WithOffset(offset).
		WithOperation("Decode")
}

// NewUnknownCommandTypeError is raised by Get when the index points at a
// byte range that decodes to a Remove record instead of a Set record.
func NewUnknownCommandTypeError(generation uint64, offset int64) *CodecError {
	return NewCodecError(ErrUnknownCommandType, ErrorCodeUnknownCommandType, "index entry does not point at a Set record").
		WithGeneration(generation).
		WithOffset(offset).
		WithOperation("Decode")
}
