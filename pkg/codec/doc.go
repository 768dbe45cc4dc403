// Package codec decodes typed binary log payloads against a field schema.
//
// A payload is an opaque byte slice; a schema is an ordered list of Fields,
// each carrying a compact type code describing its on-wire width and how its
// bytes render as text. Decode walks the schema over the payload with a
// cursor and produces (name, value) pairs in schema order.
//
// # Type Codes
//
// Single-letter codes denote fixed-width scalars, all little-endian:
//
//	Q/q  unsigned/signed 64-bit integer  (8 bytes)
//	I/i  unsigned/signed 32-bit integer  (4 bytes)
//	H/h  unsigned/signed 16-bit integer  (2 bytes)
//	B/b  unsigned/signed 8-bit integer   (1 byte)
//	f    32-bit float                    (4 bytes)
//	d    64-bit float                    (8 bytes)
//
// A run of N 'c' characters is fixed-width text of length N, as is a decimal
// numeral followed by 's' (e.g. "16s"). A run of two or more 'B' or 'b'
// characters is a raw byte block of that length, rendered as space-separated
// uppercase hex. Anything else is unresolvable.
//
// # Skip-only Fields
//
// Fields named TRASH, PADDING or RESERVED are consumed but never surfaced as
// values. The field named FILE_CONTENTS with code "c" is the tail field: it
// reads all remaining payload bytes and must be the last field in its schema.
//
// # Diagnostics
//
// Decoding never fails outright. Anomalies (unresolvable codes, fields that
// would overrun the payload, trailing unconsumed bytes) are reported as
// structured Diagnostics; decoding of a message stops at the first field
// whose boundary can no longer be trusted and returns everything decoded up
// to that point.
package codec
