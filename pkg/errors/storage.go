package errors

// StorageError wraps a segment-file failure: anything internal/storage's
// writer, reader pool, or directory setup can raise. generation and
// offset pin the failure to a specific record when one is known (a
// directory-level failure like a permission error leaves both zero).
type StorageError struct {
	*baseError
	generation uint64
	offset     int64
	fileName   string
	path       string
}

func NewStorageError(err error, code ErrorCode, msg string) *StorageError {
	return &StorageError{baseError: NewBaseError(err, code, msg)}
}

// WithGeneration records which segment generation was involved.
func (se *StorageError) WithGeneration(generation uint64) *StorageError {
	se.generation = generation
	return se
}

// WithOffset records the byte position within the segment where the
// failure happened.
func (se *StorageError) WithOffset(offset int64) *StorageError {
	se.offset = offset
	return se
}

func (se *StorageError) WithFileName(fileName string) *StorageError {
	se.fileName = fileName
	return se
}

func (se *StorageError) WithPath(path string) *StorageError {
	se.path = path
	return se
}

func (se *StorageError) Generation() uint64 {
	return se.generation
}

func (se *StorageError) Offset() int64 {
	return se.offset
}

func (se *StorageError) FileName() string {
	return se.fileName
}

func (se *StorageError) Path() string {
	return se.path
}
