package base64url

import "errors"

// ErrShortBuffer is returned by the slice-bound variants when the output
// slice cannot hold the result.
//
// Errors produced by the codec while decoding, such as
// base64.CorruptInputError, are returned unchanged.
var ErrShortBuffer = errors.New("base64url: output buffer too small")
