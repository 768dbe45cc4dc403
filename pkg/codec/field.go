package codec

// TailFieldName identifies the variable-length tail field: declared with code
// "c", it consumes all remaining payload bytes and must be the last field in
// its schema.
const TailFieldName = "FILE_CONTENTS"

// Field is one named, typed slot within a message schema. The type code is
// resolved once at construction and cached, never re-parsed per message.
type Field struct {
	Name string
	Code string

	rule Rule
	ok   bool
}

// NewField builds a Field with its type code resolved.
func NewField(name, code string) Field {
	rule, ok := Resolve(code)
	return Field{Name: name, Code: code, rule: rule, ok: ok}
}

// Rule returns the cached decoding rule; ok is false when the field's type
// code is unresolvable.
func (f Field) Rule() (rule Rule, ok bool) {
	return f.rule, f.ok
}

// SkipOnly reports whether the field's bytes are consumed but never surfaced
// as a value.
func (f Field) SkipOnly() bool {
	switch f.Name {
	case "TRASH", "PADDING", "RESERVED":
		return true
	}
	return false
}

// Tail reports whether the field reads all remaining payload bytes.
func (f Field) Tail() bool {
	return f.Name == TailFieldName && f.Code == "c"
}
