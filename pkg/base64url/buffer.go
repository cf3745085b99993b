package base64url

// Buffer is the result of a copy-on-write escape or unescape. It either
// borrows the caller's input, when nothing had to change, or owns a newly
// allocated slice.
type Buffer struct {
	b        []byte
	borrowed bool
}

func borrowed(b []byte) Buffer { return Buffer{b: b, borrowed: true} }

func owned(b []byte) Buffer { return Buffer{b: b} }

// Bytes returns the contents. A borrowed Buffer shares storage with the
// input it was produced from.
func (b Buffer) Bytes() []byte {
	return b.b
}

// String returns a copy of the contents as a string.
func (b Buffer) String() string {
	return string(b.b)
}

// Len returns the number of bytes held.
func (b Buffer) Len() int {
	return len(b.b)
}

// Borrowed reports whether the contents are a view of the input.
func (b Buffer) Borrowed() bool {
	return b.borrowed
}
