package codec

import "fmt"

// DiagnosticKind tags the class of a non-fatal decoding anomaly.
type DiagnosticKind int

const (
	// DiagUnresolvableType: a non-skip field's type code is not part of the
	// grammar; field boundaries past it cannot be trusted, decoding stops.
	DiagUnresolvableType DiagnosticKind = iota + 1
	// DiagFieldOverrun: a field's declared width reads past the end of the
	// payload; decoding stops.
	DiagFieldOverrun
	// DiagSkipOverrun: a skip-only field's width reads past the end of the
	// payload; the skip is clamped to the payload end and decoding continues.
	DiagSkipOverrun
	// DiagSkipWidthUnknown: a skip-only field's type code is unresolvable so
	// its width is unknown.
	DiagSkipWidthUnknown
	// DiagTrailingBytes: the schema was exhausted with payload bytes left
	// unconsumed.
	DiagTrailingBytes
	// DiagUnknownType: a framed message's type ID has no registry entry.
	DiagUnknownType
)

// Diagnostic is a structured record of a non-fatal decoding anomaly. It never
// aborts a run; callers collect diagnostics for human review.
type Diagnostic struct {
	Kind       DiagnosticKind
	Field      string // offending field name, where applicable
	Code       string // the field's type code
	Width      int    // resolved width, for overruns
	PayloadLen int
	Offset     int // cursor position when the anomaly was observed
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagUnresolvableType:
		return fmt.Sprintf("cannot determine size for field %q with unknown type %q, stopping parse for this message",
			d.Field, d.Code)
	case DiagFieldOverrun:
		return fmt.Sprintf("field %q (%s) of size %d exceeds payload length %d, stopping parse for this message",
			d.Field, d.Code, d.Width, d.PayloadLen)
	case DiagSkipOverrun:
		return fmt.Sprintf("skippable field %q (%s) of size %d exceeds payload length %d, skipping remaining %d bytes",
			d.Field, d.Code, d.Width, d.PayloadLen, d.PayloadLen-d.Offset)
	case DiagSkipWidthUnknown:
		return fmt.Sprintf("cannot determine size for skippable field %q with unknown type %q",
			d.Field, d.Code)
	case DiagTrailingBytes:
		return fmt.Sprintf("payload not fully consumed: length %d, read %d, %d bytes remaining",
			d.PayloadLen, d.Offset, d.PayloadLen-d.Offset)
	case DiagUnknownType:
		return "no schema registered for this message type"
	}
	return fmt.Sprintf("unknown diagnostic kind %d", int(d.Kind))
}
