// Package schema loads and validates the message registry: the mapping from
// numeric message-type IDs to named, ordered field layouts.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/remogolf/wallace/pkg/codec"
)

// Message describes how one message type's payload decodes: a human-readable
// name plus the on-wire field order. Field order is load-bearing.
type Message struct {
	Name   string
	Fields []codec.Field
}

// Registry maps message-type IDs to message definitions. Immutable after
// load; safe for concurrent readers.
type Registry struct {
	defs map[uint16]*Message
}

// Lookup returns the definition for a type ID, if registered.
func (r *Registry) Lookup(id uint16) (*Message, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Len returns the number of registered message types.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Types returns the registered type IDs in ascending order.
func (r *Registry) Types() []uint16 {
	ids := make([]uint16, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// JSON wire form of the registry file: keys are decimal type IDs.
type fieldJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type messageJSON struct {
	Name   string      `json:"name"`
	Fields []fieldJSON `json:"fields"`
}

// Load reads and validates a registry from a JSON file.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()
	reg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return reg, nil
}

// Parse reads a registry from JSON and validates it. Validation fails on
// non-numeric type-ID keys and on a tail field that is not the last field of
// its schema; unresolvable type codes are allowed here and surface as
// decode-time diagnostics instead.
func Parse(r io.Reader) (*Registry, error) {
	var raw map[string]messageJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}

	defs := make(map[uint16]*Message, len(raw))
	for key, m := range raw {
		id, err := strconv.ParseUint(key, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("registry key %q is not a 16-bit message type ID", key)
		}
		def := &Message{
			Name:   m.Name,
			Fields: make([]codec.Field, 0, len(m.Fields)),
		}
		for i, fd := range m.Fields {
			f := codec.NewField(fd.Name, fd.Type)
			if f.Tail() && i != len(m.Fields)-1 {
				return nil, fmt.Errorf("message %s (%s): tail field %q must be the last field in its schema",
					key, m.Name, fd.Name)
			}
			def.Fields = append(def.Fields, f)
		}
		defs[uint16(id)] = def
	}
	return &Registry{defs: defs}, nil
}
