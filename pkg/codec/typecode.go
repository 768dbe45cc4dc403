package codec

import "strconv"

// Kind classifies how a resolved field's bytes are interpreted.
type Kind int

const (
	KindInvalid Kind = iota
	KindUint         // unsigned integer, rendered base-10
	KindInt          // signed integer, rendered base-10
	KindFloat        // IEEE-754 float, rendered shortest round-trip
	KindText         // fixed-width text, trailing NULs trimmed
	KindBytes        // raw byte block, rendered as spaced uppercase hex
)

// Rule is a resolved type code: the interpretation of a field and the number
// of payload bytes it consumes.
type Rule struct {
	Kind  Kind
	Width int
}

// Resolve interprets a type-code string into a decoding rule. Resolution is
// pure: identical input always yields identical output. The second return
// value is false when the code is not part of the grammar.
func Resolve(code string) (Rule, bool) {
	switch code {
	case "Q":
		return Rule{KindUint, 8}, true
	case "q":
		return Rule{KindInt, 8}, true
	case "I":
		return Rule{KindUint, 4}, true
	case "i":
		return Rule{KindInt, 4}, true
	case "H":
		return Rule{KindUint, 2}, true
	case "h":
		return Rule{KindInt, 2}, true
	case "B":
		return Rule{KindUint, 1}, true
	case "b":
		return Rule{KindInt, 1}, true
	case "f":
		return Rule{KindFloat, 4}, true
	case "d":
		return Rule{KindFloat, 8}, true
	}
	if code == "" {
		return Rule{}, false
	}
	switch {
	case repeats(code, 'c'):
		return Rule{KindText, len(code)}, true
	case repeats(code, 'B'), repeats(code, 'b'):
		return Rule{KindBytes, len(code)}, true
	}
	if code[len(code)-1] == 's' {
		if n, ok := decimal(code[:len(code)-1]); ok {
			return Rule{KindText, n}, true
		}
	}
	return Rule{}, false
}

func repeats(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

// decimal parses an unsigned base-10 numeral with no sign or whitespace.
func decimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
