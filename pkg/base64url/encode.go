package base64url

import "golang.org/x/exp/slices"

// Encode returns the base64url encoding of src.
func (e *Encoding) Encode(src []byte) string {
	dst := make([]byte, e.codec.EncodedLen(len(src)))
	e.codec.Encode(dst, src)
	return string(dst)
}

// EncodeToSlice encodes src into dst and returns the written prefix of dst.
// It returns ErrShortBuffer if dst is smaller than EncodedLen(len(src)).
func (e *Encoding) EncodeToSlice(src, dst []byte) ([]byte, error) {
	n := e.codec.EncodedLen(len(src))
	if len(dst) < n {
		return nil, ErrShortBuffer
	}
	e.codec.Encode(dst[:n], src)
	return dst[:n], nil
}

// AppendEncode appends the encoding of src to dst and returns the extended
// slice. dst grows at most once.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := e.codec.EncodedLen(len(src))
	start := len(dst)
	dst = slices.Grow(dst, n)[:start+n]
	e.codec.Encode(dst[start:], src)
	return dst
}

// EncodeToBuffer appends the encoding of src to *buf and returns the
// appended region. Existing contents of *buf are left untouched.
func (e *Encoding) EncodeToBuffer(src []byte, buf *[]byte) []byte {
	start := len(*buf)
	*buf = e.AppendEncode(*buf, src)
	return (*buf)[start:]
}

// AppendEncodeToString appends the encoding of src to *s and returns the
// appended text. It is handy for building URLs:
//
//	url := "https://example.com/?hash="
//	base64url.AppendEncodeToString(hash, &url)
func (e *Encoding) AppendEncodeToString(src []byte, s *string) string {
	start := len(*s)
	buf := make([]byte, start, start+e.codec.EncodedLen(len(src)))
	copy(buf, *s)
	*s = string(e.AppendEncode(buf, src))
	return (*s)[start:]
}

// Encode returns the base64url encoding of src.
func Encode[T Input](src T) string {
	return URLSafe.Encode([]byte(src))
}

// EncodeToSlice encodes src into dst using URLSafe.
func EncodeToSlice[T Input](src T, dst []byte) ([]byte, error) {
	return URLSafe.EncodeToSlice([]byte(src), dst)
}

// AppendEncode appends the base64url encoding of src to dst.
func AppendEncode[T Input](dst []byte, src T) []byte {
	return URLSafe.AppendEncode(dst, []byte(src))
}

// EncodeToBuffer appends the base64url encoding of src to *buf and returns
// the appended region.
func EncodeToBuffer[T Input](src T, buf *[]byte) []byte {
	return URLSafe.EncodeToBuffer([]byte(src), buf)
}

// AppendEncodeToString appends the base64url encoding of src to *s and
// returns the appended text.
func AppendEncodeToString[T Input](src T, s *string) string {
	return URLSafe.AppendEncodeToString([]byte(src), s)
}

// EncodedLen returns the length of the base64url encoding of n bytes.
func EncodedLen(n int) int {
	return URLSafe.EncodedLen(n)
}
