package base64url

import (
	"strings"

	"golang.org/x/exp/slices"
)

// padding returns the number of '=' characters a base64url text of length
// n needs to become standard base64.
func padding(n int) int {
	return (4 - n%4) % 4
}

// Unescape converts base64url text into standard base64 text by replacing
// '-' with '+' and '_' with '/', and appending the padding implied by the
// length of s. The result length is always a multiple of four.
//
// When s needs neither substitution nor padding it is returned as is.
// The input is not validated.
func Unescape(s string) string {
	if pad := padding(len(s)); pad > 0 {
		var b strings.Builder
		b.Grow(len(s) + pad)
		unescapeStringTail(&b, s)
		for i := 0; i < pad; i++ {
			b.WriteByte('=')
		}
		return b.String()
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '-', '_':
			var b strings.Builder
			b.Grow(len(s))
			b.WriteString(s[:i])
			unescapeStringTail(&b, s[i:])
			return b.String()
		}
	}
	return s
}

func unescapeStringTail(b *strings.Builder, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '-', '_':
			b.WriteString(s[start:i])
			b.WriteByte(unescapeByte(c))
			start = i + 1
		}
	}
	b.WriteString(s[start:])
}

// UnescapeBytes is like Unescape for a byte slice. The returned Buffer
// borrows src when neither substitution nor padding is needed, and otherwise
// owns a new slice. src is never modified.
func UnescapeBytes(src []byte) Buffer {
	if pad := padding(len(src)); pad > 0 {
		dst := make([]byte, 0, len(src)+pad)
		return owned(appendUnescaped(dst, src, pad))
	}

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '-', '_':
			dst := make([]byte, i, len(src))
			copy(dst, src[:i])
			return owned(appendUnescaped(dst, src[i:], 0))
		}
	}
	return borrowed(src)
}

// AppendUnescape appends the unescaped, padded form of src to dst and
// returns the extended slice.
func AppendUnescape(dst, src []byte) []byte {
	pad := padding(len(src))
	dst = slices.Grow(dst, len(src)+pad)
	return appendUnescaped(dst, src, pad)
}

func appendUnescaped(dst, src []byte, pad int) []byte {
	start := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '-', '_':
			dst = append(dst, src[start:i]...)
			dst = append(dst, unescapeByte(c))
			start = i + 1
		}
	}
	dst = append(dst, src[start:]...)
	return appendPadding(dst, pad)
}

func appendPadding(dst []byte, pad int) []byte {
	for i := 0; i < pad; i++ {
		dst = append(dst, '=')
	}
	return dst
}

// UnescapeInPlace replaces characters of b in place and appends the
// padding. Like append, it returns the updated slice, which only needs new
// storage when cap(b) cannot hold the padding.
func UnescapeInPlace(b []byte) []byte {
	substituteUnescape(b)
	return appendPadding(b, padding(len(b)))
}

// UnescapeTryInPlace replaces characters of b in place. When padding is
// needed the result is copied into a new, owned slice that holds the
// padding; otherwise the returned Buffer borrows b. b is never grown.
func UnescapeTryInPlace(b []byte) Buffer {
	substituteUnescape(b)

	pad := padding(len(b))
	if pad == 0 {
		return borrowed(b)
	}

	dst := make([]byte, len(b), len(b)+pad)
	copy(dst, b)
	return owned(appendPadding(dst, pad))
}

func substituteUnescape(b []byte) {
	for i, c := range b {
		switch c {
		case '-', '_':
			b[i] = unescapeByte(c)
		}
	}
}

func unescapeByte(c byte) byte {
	switch c {
	case '-':
		return '+'
	case '_':
		return '/'
	}
	return c
}
