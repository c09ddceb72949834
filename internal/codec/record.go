// Package codec implements the self-delimiting record format every segment
// is a concatenation of (spec.md §4.1). A record is a tagged command, Set
// or Remove, encoded as a single JSON object with a discriminant "type"
// field — the sum-type encoding spec.md §9 calls for, not a Go interface
// hierarchy.
package codec

import (
	"encoding/json"
	"io"

	rifterrors "github.com/nilotpal-dev/riftdb/pkg/errors"
)

// Kind discriminates the two command records the engine ever writes.
type Kind string

const (
	// KindSet asserts that Key now maps to Value.
	KindSet Kind = "set"
	// KindRemove asserts that Key is no longer present.
	KindRemove Kind = "rm"
)

// Command is the tagged union of the two logical operations the engine
// appends to a segment. Value is empty for Remove records.
type Command struct {
	Type  Kind   `json:"type"`
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// NewSet builds a Set command record.
func NewSet(key, value string) Command {
	return Command{Type: KindSet, Key: key, Value: value}
}

// NewRemove builds a Remove command record.
func NewRemove(key string) Command {
	return Command{Type: KindRemove, Key: key}
}

// IsSet reports whether c is a Set record.
func (c Command) IsSet() bool {
	return c.Type == KindSet
}

// Encode marshals a command into its on-disk byte representation.
// Concatenating the result of successive Encode calls and feeding it to a
// Decoder reproduces the same sequence of commands (spec.md §4.1).
func Encode(c Command) ([]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, rifterrors.NewCodecError(err, rifterrors.ErrorCodeSerde, "failed to encode record").
			WithOperation("Encode")
	}
	return b, nil
}

// Decoder streams Command records out of a segment, reporting the exact
// byte offset consumed after each successful decode so callers can record
// (offset, length) index entries (spec.md §4.1).
type Decoder struct {
	json *json.Decoder
}

// NewDecoder wraps r for streaming decode. r need not be buffered; callers
// typically hand it a bufio.Reader or an io.SectionReader bounded to a
// single record.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{json: json.NewDecoder(r)}
}

// Offset returns the number of bytes consumed from the underlying reader
// so far.
func (d *Decoder) Offset() int64 {
	return d.json.InputOffset()
}

// Decode reads the next command from the stream. It returns io.EOF (via
// the standard library's json.Decoder) when the stream is exhausted with
// no partial record pending.
func (d *Decoder) Decode() (Command, error) {
	var c Command
	if err := d.json.Decode(&c); err != nil {
		if err == io.EOF {
			return Command{}, io.EOF
		}
		return Command{}, rifterrors.NewCodecError(err, rifterrors.ErrorCodeSerde, "failed to decode record").
			WithOffset(d.Offset()).
			WithOperation("Decode")
	}
	if c.Type != KindSet && c.Type != KindRemove {
		return Command{}, rifterrors.NewCodecError(nil, rifterrors.ErrorCodeSerde, "unrecognized command type").
			WithOffset(d.Offset()).
			WithOperation("Decode")
	}
	return c, nil
}
