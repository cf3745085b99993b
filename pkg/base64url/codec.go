package base64url

import "encoding/base64"

// Codec is the numeric base64 codec an Encoding is built on.
// *base64.Encoding implements it.
type Codec interface {
	// Encode writes exactly EncodedLen(len(src)) bytes to dst.
	Encode(dst, src []byte)
	EncodedLen(n int) int

	// Decode writes at most DecodedLen(len(src)) bytes to dst and returns
	// the number of bytes written.
	Decode(dst, src []byte) (n int, err error)
	DecodedLen(n int) int
}

// Encoding adds buffer management around a Codec. It holds no mutable
// state and is safe for concurrent use if its Codec is.
type Encoding struct {
	codec Codec
}

// NewEncoding returns an Encoding that encodes and decodes with codec.
//
// For example NewEncoding(base64.RawURLEncoding.Strict()) rejects encoded
// text with non-zero trailing bits.
func NewEncoding(codec Codec) *Encoding {
	return &Encoding{codec: codec}
}

// URLSafe is the base64url alphabet without padding. The package-level
// Encode and Decode functions use it.
var URLSafe = NewEncoding(base64.RawURLEncoding)

// Input is the set of types accepted by the package-level Encode and
// Decode functions.
type Input interface {
	~string | ~[]byte
}

// EncodedLen returns the length in bytes of the encoding of n source
// bytes. For URLSafe this is ceil(n*4/3).
func (e *Encoding) EncodedLen(n int) int {
	return e.codec.EncodedLen(n)
}

// DecodedLen returns an upper bound on the length in bytes of the data
// decoded from n bytes of encoded text: ceil(n/4)*3, or the codec's own
// bound if that is larger.
func (e *Encoding) DecodedLen(n int) int {
	return max((n+3)/4*3, e.codec.DecodedLen(n))
}
