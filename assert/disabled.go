//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// If the assertion fails, it panics with a message.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// ValidIndex asserts that index addresses an element of a container of the
// given length, i.e. 0 <= index < length.
// If the assertion fails, it panics with a message naming the index and length.
func ValidIndex(index, length int) {
	// Intentionally left blank
}

// ValidRange asserts that [start, end) is a valid sub-range of a container of
// the given length, i.e. 0 <= start <= end <= length.
// If the assertion fails, it panics with a message naming the range and length.
func ValidRange(start, end, length int) {
	// Intentionally left blank
}

// NotEmpty asserts that a container of the given length has at least one
// element. If the assertion fails, it panics with a message.
func NotEmpty(length int, args ...any) {
	// Intentionally left blank
}
