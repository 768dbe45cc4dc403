//go:build fuzz
// +build fuzz

package codec

import "testing"

// FuzzDecode throws arbitrary payloads and type codes at the decoder to check
// it never panics and never reads out of bounds.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x2A, 0x00, 0x05}, "H", "B")
	f.Add([]byte{}, "Q", "cccc")
	f.Add([]byte{1, 2, 3, 4}, "??", "16s")
	f.Add([]byte("payload tail bytes"), "H", "c")

	f.Fuzz(func(t *testing.T, payload []byte, codeA, codeB string) {
		if len(payload) > 1<<16 {
			t.Skip("payload larger than the wire format allows")
		}
		schema := []Field{
			NewField("A", codeA),
			NewField("PADDING", codeB),
			NewField("B", codeB),
			NewField(TailFieldName, "c"),
		}
		values, diags, skipped := Decode(payload, schema, DecodeOptions{})

		if skipped > 1 {
			t.Fatalf("skipped %d fields, schema has one skip-only field", skipped)
		}
		if len(values) > 3 {
			t.Fatalf("got %d values from a schema with three value fields", len(values))
		}
		// Trailing bytes may only be reported once per decode.
		trailing := 0
		for _, d := range diags {
			if d.Kind == DiagTrailingBytes {
				trailing++
			}
		}
		if trailing > 1 {
			t.Fatalf("got %d trailing-bytes diagnostics", trailing)
		}
	})
}
