package base64url

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("Hello, world!"))
	f.Add([]byte{0xfb, 0xff, 0xbf})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		decoded, err := Decode(Encode(data))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !bytes.Equal(data, decoded) {
			t.Fatalf("round trip mismatch: %x != %x", data, decoded)
		}

		std := base64.StdEncoding.EncodeToString(data)
		if Escape(std) != Encode(data) {
			t.Fatalf("escape(%q) = %q, want %q", std, Escape(std), Encode(data))
		}
		if Unescape(Escape(std)) != std {
			t.Fatalf("unescape(escape(%q)) = %q", std, Unescape(Escape(std)))
		}
	})
}

func FuzzEscapeUnescape(f *testing.F) {
	f.Add("SGVsbG8sIHdvcmxkIQ==")
	f.Add("a+b=c/d")
	f.Add("-_")

	f.Fuzz(func(t *testing.T, s string) {
		u := Unescape(s)
		if len(u)%4 != 0 {
			t.Fatalf("len(unescape(%q)) = %d", s, len(u))
		}

		want := s
		if i := strings.IndexByte(want, '='); i >= 0 {
			want = want[:i]
		}
		want = strings.NewReplacer("+", "-", "/", "_").Replace(want)

		if got := Escape(s); got != want {
			t.Fatalf("escape(%q) = %q, want %q", s, got, want)
		}
		if got := EscapeBytes([]byte(s)).String(); got != want {
			t.Fatalf("escape bytes(%q) = %q, want %q", s, got, want)
		}
		if got := string(EscapeInPlace([]byte(s))); got != want {
			t.Fatalf("escape in place(%q) = %q, want %q", s, got, want)
		}
		if got := UnescapeBytes([]byte(s)).String(); got != u {
			t.Fatalf("unescape bytes(%q) = %q, want %q", s, got, u)
		}
		if got := string(UnescapeInPlace([]byte(s))); got != u {
			t.Fatalf("unescape in place(%q) = %q, want %q", s, got, u)
		}
	})
}

func BenchmarkEscape(b *testing.B) {
	s := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xfb, 0xff, 0x01}, 1024))
	b.SetBytes(int64(len(s)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Escape(s)
	}
}

func BenchmarkUnescape(b *testing.B) {
	s := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{0xfb, 0xff, 0x01}, 1024))
	b.SetBytes(int64(len(s)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Unescape(s)
	}
}

func BenchmarkEncodeToBuffer(b *testing.B) {
	data := bytes.Repeat([]byte{1, 2, 3}, 1024)
	buf := make([]byte, 0, EncodedLen(len(data)))
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		EncodeToBuffer(data, &buf)
	}
}

func BenchmarkDecodeToBuffer(b *testing.B) {
	s := Encode(bytes.Repeat([]byte{1, 2, 3}, 1024))
	buf := make([]byte, 0, DecodedLen(len(s)))
	b.SetBytes(int64(len(s)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		if _, err := DecodeToBuffer(s, &buf); err != nil {
			b.Fatal(err)
		}
	}
}

func TestAppendAllocations(t *testing.T) {
	data := bytes.Repeat([]byte{0xfb, 0xff, 0x01}, 4096)
	std := []byte(base64.StdEncoding.EncodeToString(data))
	url := []byte(base64.RawURLEncoding.EncodeToString(data))

	tests := []struct {
		Name   string
		Append func() []byte
	}{
		{
			Name:   "escape",
			Append: func() []byte { return AppendEscape(nil, std) },
		},
		{
			Name:   "unescape",
			Append: func() []byte { return AppendUnescape(nil, url) },
		},
		{
			Name:   "encode",
			Append: func() []byte { return AppendEncode(nil, data) },
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			allocs := testing.AllocsPerRun(10, func() { _ = test.Append() })
			require.LessOrEqual(t, allocs, 1.0)
		})
	}
}
