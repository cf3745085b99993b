package base64url

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Escape converts standard base64 text into base64url text by replacing
// '+' with '-' and '/' with '_', and cutting the text at the first '='.
//
// The result is a substring of s when no '+' or '/' precedes the first '='.
// The input is not validated.
func Escape(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+', '/':
			var b strings.Builder
			b.Grow(len(s))
			b.WriteString(s[:i])
			escapeStringTail(&b, s[i:])
			return b.String()
		case '=':
			return s[:i]
		}
	}
	return s
}

// escapeStringTail writes the escaped form of s, which starts with a
// character that must be replaced. Unchanged runs are written in one call.
func escapeStringTail(b *strings.Builder, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '+', '/':
			b.WriteString(s[start:i])
			b.WriteByte(escapeByte(c))
			start = i + 1
		case '=':
			b.WriteString(s[start:i])
			return
		}
	}
	b.WriteString(s[start:])
}

// EscapeBytes is like Escape for a byte slice. The returned Buffer borrows
// src when no '+' or '/' precedes the first '=', and otherwise owns a new
// slice. src is never modified.
func EscapeBytes(src []byte) Buffer {
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '+', '/':
			dst := make([]byte, i, len(src))
			copy(dst, src[:i])
			return owned(appendEscaped(dst, src[i:]))
		case '=':
			return borrowed(src[:i])
		}
	}
	return borrowed(src)
}

// AppendEscape appends the escaped form of src to dst and returns the
// extended slice. dst grows at most once.
func AppendEscape(dst, src []byte) []byte {
	dst = slices.Grow(dst, len(src))
	return appendEscaped(dst, src)
}

func appendEscaped(dst, src []byte) []byte {
	start := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '+', '/':
			dst = append(dst, src[start:i]...)
			dst = append(dst, escapeByte(c))
			start = i + 1
		case '=':
			return append(dst, src[start:i]...)
		}
	}
	return append(dst, src[start:]...)
}

// EscapeInPlace escapes b without allocating and returns b truncated to the
// escaped length. The result shares storage with b.
func EscapeInPlace(b []byte) []byte {
	for i, c := range b {
		switch c {
		case '+', '/':
			b[i] = escapeByte(c)
		case '=':
			return b[:i]
		}
	}
	return b
}

func escapeByte(c byte) byte {
	switch c {
	case '+':
		return '-'
	case '/':
		return '_'
	}
	return c
}
