package codec

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// FieldValue is one decoded (name, rendered value) pair.
type FieldValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DecodeOptions controls non-default decoding behavior.
type DecodeOptions struct {
	// BestEffortSkips keeps decoding past a skip-only field whose width
	// cannot be resolved, leaving the cursor where it was. Off by default:
	// once a field's width is unknown, every later field in the message is
	// misaligned, so decoding stops instead.
	BestEffortSkips bool
}

// Decode walks the schema fields in order over payload, maintaining a cursor.
// It returns the decoded (name, value) pairs in schema order, the diagnostics
// raised along the way, and the number of skip-only fields consumed.
//
// Decoding a message stops early at the first non-skip field whose type code
// is unresolvable or whose width would read past the end of the payload;
// pairs decoded before that point are returned unchanged. Skip-only fields
// that would overrun are clamped to the payload end instead. Payload bytes
// left over after the schema is exhausted raise a trailing-bytes diagnostic.
func Decode(payload []byte, fields []Field, opts DecodeOptions) ([]FieldValue, []Diagnostic, int) {
	var (
		values  []FieldValue
		diags   []Diagnostic
		skipped int
	)
	cursor := 0

	for _, f := range fields {
		rule, ok := f.Rule()

		if f.SkipOnly() {
			if !ok {
				diags = append(diags, Diagnostic{
					Kind:       DiagSkipWidthUnknown,
					Field:      f.Name,
					Code:       f.Code,
					PayloadLen: len(payload),
					Offset:     cursor,
				})
				if opts.BestEffortSkips {
					continue
				}
				break
			}
			if cursor+rule.Width > len(payload) {
				diags = append(diags, Diagnostic{
					Kind:       DiagSkipOverrun,
					Field:      f.Name,
					Code:       f.Code,
					Width:      rule.Width,
					PayloadLen: len(payload),
					Offset:     cursor,
				})
				cursor = len(payload)
			} else {
				cursor += rule.Width
			}
			skipped++
			continue
		}

		if f.Tail() {
			values = append(values, FieldValue{Name: f.Name, Value: trimText(payload[cursor:])})
			cursor = len(payload)
			continue
		}

		if !ok {
			diags = append(diags, Diagnostic{
				Kind:       DiagUnresolvableType,
				Field:      f.Name,
				Code:       f.Code,
				PayloadLen: len(payload),
				Offset:     cursor,
			})
			break
		}
		if cursor+rule.Width > len(payload) {
			diags = append(diags, Diagnostic{
				Kind:       DiagFieldOverrun,
				Field:      f.Name,
				Code:       f.Code,
				Width:      rule.Width,
				PayloadLen: len(payload),
				Offset:     cursor,
			})
			break
		}

		values = append(values, FieldValue{
			Name:  f.Name,
			Value: render(rule, payload[cursor:cursor+rule.Width]),
		})
		cursor += rule.Width
	}

	if cursor < len(payload) {
		diags = append(diags, Diagnostic{
			Kind:       DiagTrailingBytes,
			PayloadLen: len(payload),
			Offset:     cursor,
		})
	}
	return values, diags, skipped
}

// render turns exactly rule.Width bytes into the field's textual value.
func render(rule Rule, b []byte) string {
	switch rule.Kind {
	case KindUint:
		return strconv.FormatUint(uintLE(b), 10)
	case KindInt:
		return strconv.FormatInt(intLE(b), 10)
	case KindFloat:
		// Positional decimal, never scientific notation, shortest form that
		// round-trips.
		if rule.Width == 4 {
			v := math.Float32frombits(binary.LittleEndian.Uint32(b))
			return strconv.FormatFloat(float64(v), 'f', -1, 32)
		}
		v := math.Float64frombits(binary.LittleEndian.Uint64(b))
		return strconv.FormatFloat(v, 'f', -1, 64)
	case KindText:
		return trimText(b)
	case KindBytes:
		return hexBlock(b)
	}
	return ""
}

func uintLE(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

func intLE(b []byte) int64 {
	switch len(b) {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	default:
		return int64(binary.LittleEndian.Uint64(b))
	}
}

// trimText interprets bytes as text with trailing NULs removed.
func trimText(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

// hexBlock renders bytes as space-separated two-digit uppercase hex.
func hexBlock(b []byte) string {
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[v>>4])
		sb.WriteByte(digits[v&0x0F])
	}
	return sb.String()
}
