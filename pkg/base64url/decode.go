package base64url

import "golang.org/x/exp/slices"

// Decode returns the bytes represented by the encoded text src.
func (e *Encoding) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, e.codec.DecodedLen(len(src)))
	n, err := e.codec.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeString is like Decode for a string.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return e.Decode([]byte(s))
}

// DecodeToSlice decodes src into dst and returns the decoded prefix of dst.
// It returns ErrShortBuffer if dst cannot hold the decoded data. On error
// dst may hold partially written bytes.
func (e *Encoding) DecodeToSlice(src, dst []byte) ([]byte, error) {
	if len(dst) < e.codec.DecodedLen(len(src)) {
		return nil, ErrShortBuffer
	}
	n, err := e.codec.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// AppendDecode appends the data decoded from src to dst and returns the
// extended slice. dst grows at most once, by DecodedLen(len(src)), so it
// never fails with ErrShortBuffer. On error dst is returned with its
// original length.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	start := len(dst)
	n := e.DecodedLen(len(src))
	grown := slices.Grow(dst, n)
	decoded, err := e.DecodeToSlice(src, grown[start:start+n])
	if err != nil {
		return dst, err
	}
	return grown[:start+len(decoded)], nil
}

// DecodeToBuffer appends the data decoded from src to *buf and returns the
// appended region. On error len(*buf) is unchanged and no partially decoded
// bytes become visible.
func (e *Encoding) DecodeToBuffer(src []byte, buf *[]byte) ([]byte, error) {
	start := len(*buf)
	out, err := e.AppendDecode(*buf, src)
	if err != nil {
		return nil, err
	}
	*buf = out
	return out[start:], nil
}

// Decode returns the bytes represented by the base64url text src.
func Decode[T Input](src T) ([]byte, error) {
	return URLSafe.Decode([]byte(src))
}

// DecodeToSlice decodes the base64url text src into dst.
func DecodeToSlice[T Input](src T, dst []byte) ([]byte, error) {
	return URLSafe.DecodeToSlice([]byte(src), dst)
}

// AppendDecode appends the data decoded from the base64url text src to dst.
func AppendDecode[T Input](dst []byte, src T) ([]byte, error) {
	return URLSafe.AppendDecode(dst, []byte(src))
}

// DecodeToBuffer appends the data decoded from the base64url text src to
// *buf and returns the appended region.
func DecodeToBuffer[T Input](src T, buf *[]byte) ([]byte, error) {
	return URLSafe.DecodeToBuffer([]byte(src), buf)
}

// DecodedLen returns an upper bound on the length of the data decoded from
// n bytes of base64url text.
func DecodedLen(n int) int {
	return URLSafe.DecodedLen(n)
}
