// Package base64url provides base64url encoding and decoding as defined in
// RFC 4648 Section 5, together with fast conversion between standard base64
// text and base64url text that does not run the numeric codec again.
//
// The differences from standard base64 are:
//   - URL-safe characters (- and _ instead of + and /)
//   - No padding characters (=) in the encoded output
//   - Padding is reconstructed by Unescape from the text length
//
// Encode and Decode (and their buffer variants) use the URL-safe alphabet
// directly. Escape and Unescape only substitute characters, so they are meant
// for text that is already valid base64 or base64url respectively; they never
// fail, but their output is only meaningful for well-formed input.
//
// Escape drops everything from the first padding character onwards, so
// Unescape(Escape(s)) == s only holds when s carries nothing but padding after
// its first '='.
//
// Functions that return a Buffer or a string may return a view of their input
// when no character had to be replaced. Functions that take a *[]byte append
// to it and return only the newly appended region.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-5
package base64url
