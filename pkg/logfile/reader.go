// Package logfile frames and decodes the binary log stream: a 4-byte header
// word followed by length-prefixed, schema-typed messages.
package logfile

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/remogolf/wallace/pkg/codec"
	"github.com/remogolf/wallace/pkg/schema"
)

// UnknownTypePolicy selects what happens to messages whose type ID has no
// registry entry. They never produce a decoded message either way.
type UnknownTypePolicy int

const (
	// DropUnknown silently omits such messages.
	DropUnknown UnknownTypePolicy = iota
	// WarnUnknown records one diagnostic per dropped message.
	WarnUnknown
)

// ExtractOptions controls extraction behavior.
type ExtractOptions struct {
	UnknownTypes UnknownTypePolicy
	// BestEffortSkips opts decoding into the degraded mode where a skip-only
	// field with unknown width does not terminate its message.
	BestEffortSkips bool
	// MaxPayload rejects declared payload lengths above this many bytes as a
	// stream error. Zero means no cap; the wire format itself bounds a
	// payload at 65535 bytes.
	MaxPayload int
}

// Message is one decoded record: its wire type ID, the registry name, and the
// rendered field values in schema order.
type Message struct {
	Type   uint16
	Name   string
	Fields []codec.FieldValue
}

// Warning is a diagnostic tagged with the message it came from.
type Warning struct {
	Type uint16
	Name string
	Diag codec.Diagnostic
}

func (w Warning) String() string {
	if w.Name == "" {
		return fmt.Sprintf("log_type %d: %s", w.Type, w.Diag)
	}
	return fmt.Sprintf("log_type %d (%s): %s", w.Type, w.Name, w.Diag)
}

// Result aggregates everything one extraction run produced.
type Result struct {
	Messages      []Message
	Warnings      []Warning
	SkippedFields int
}

// StreamError is a fatal framing failure: the stream errored or ended
// anywhere other than cleanly at a message boundary. The whole run aborts.
type StreamError struct {
	Section string // "header", "type id", "length", "payload"
	Type    uint16 // message type being framed, when known
	Err     error
}

func (e *StreamError) Error() string {
	if e.Section == "header" {
		return fmt.Sprintf("failed to read stream header: %v", e.Err)
	}
	return fmt.Sprintf("failed to read %s for message type %d: %v", e.Section, e.Type, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// Extract consumes the stream to EOF, framing each message and decoding its
// payload against the registry schema for its type ID. The stream may only
// end immediately before a type ID; a partial type ID, length or payload is a
// truncation and fails the run. Diagnostics from decoding are collected, not
// fatal.
func Extract(r io.Reader, reg *schema.Registry, opts ExtractOptions) (*Result, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, &StreamError{Section: "header", Err: err}
	}

	res := &Result{}
	var word [2]byte
	for {
		// EOF exactly here is the expected end of stream. io.ReadFull
		// returns io.EOF only when zero bytes were read; a torn type ID
		// surfaces as io.ErrUnexpectedEOF and is fatal.
		if _, err := io.ReadFull(r, word[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, &StreamError{Section: "type id", Err: err}
		}
		typeID := binary.LittleEndian.Uint16(word[:])

		if _, err := io.ReadFull(r, word[:]); err != nil {
			return nil, &StreamError{Section: "length", Type: typeID, Err: err}
		}
		length := int(binary.LittleEndian.Uint16(word[:]))
		if opts.MaxPayload > 0 && length > opts.MaxPayload {
			return nil, &StreamError{
				Section: "length", Type: typeID,
				Err: fmt.Errorf("declared payload length %d exceeds cap %d", length, opts.MaxPayload),
			}
		}

		payload := make([]byte, length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, &StreamError{Section: "payload", Type: typeID, Err: err}
		}

		def, ok := reg.Lookup(typeID)
		if !ok {
			if opts.UnknownTypes == WarnUnknown {
				res.Warnings = append(res.Warnings, Warning{
					Type: typeID,
					Diag: codec.Diagnostic{Kind: codec.DiagUnknownType},
				})
			}
			continue
		}

		values, diags, skipped := codec.Decode(payload, def.Fields, codec.DecodeOptions{
			BestEffortSkips: opts.BestEffortSkips,
		})
		res.SkippedFields += skipped
		res.Messages = append(res.Messages, Message{
			Type:   typeID,
			Name:   def.Name,
			Fields: values,
		})
		for _, d := range diags {
			res.Warnings = append(res.Warnings, Warning{Type: typeID, Name: def.Name, Diag: d})
		}
	}
	return res, nil
}
