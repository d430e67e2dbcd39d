package sortable

import (
	"golang.org/x/text/unicode/norm"
)

// String is a sortable wrapper type for the built-in string type, ordered
// byte-lexically the way Go's < operator orders strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NFCString builds a String normalized to Unicode NFC. Text that can be
// written with either composed or decomposed code points (e.g. "é" as one
// rune or as "e" plus a combining accent) compares equal and orders
// consistently after normalization. Use this constructor when container keys
// come from external text input.
func NFCString(s string) String {
	return String(norm.NFC.String(s))
}
