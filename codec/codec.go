package codec

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ReplacementChar is substituted for every malformed code unit.
const ReplacementChar = '\uFFFD'

// UTF8ToUTF16 converts a UTF-8 string to UTF-16 code units.
// Invalid UTF-8 bytes are replaced by U+FFFD, one per byte.
func UTF8ToUTF16(s string) []uint16 {
	return AppendUTF16(make([]uint16, 0, len(s)), s)
}

// UTF16ToUTF8 converts UTF-16 code units to a UTF-8 string.
// Unpaired surrogates are replaced by U+FFFD.
func UTF16ToUTF8(u []uint16) string {
	return string(AppendUTF8(make([]byte, 0, len(u)*2), u))
}

// UTF8ToWide converts a UTF-8 string to a slice of code points.
func UTF8ToWide(s string) []rune {
	return AppendWide(make([]rune, 0, len(s)), s)
}

// WideToUTF8 converts a slice of code points to a UTF-8 string.
// Surrogates and runes outside of the Unicode code space are replaced by U+FFFD.
func WideToUTF8(w []rune) string {
	b := make([]byte, 0, len(w)+len(w)/2)
	for _, r := range w {
		b = utf8.AppendRune(b, r)
	}
	return string(b)
}

// UTF16ToWide converts UTF-16 code units to a slice of code points.
func UTF16ToWide(u []uint16) []rune {
	w := make([]rune, 0, len(u))
	for i := 0; i < len(u); i++ {
		r, n := decodeUTF16(u[i:])
		w = append(w, r)
		i += n - 1
	}
	return w
}

// WideToUTF16 converts a slice of code points to UTF-16 code units.
func WideToUTF16(w []rune) []uint16 {
	u := make([]uint16, 0, len(w)+len(w)>>4+4)
	for _, r := range w {
		u = appendRune16(u, r)
	}
	return u
}

// --- Scratch buffer variants -----------------------------------------------

// AppendUTF16 appends the UTF-16 form of s to dst and returns the extended
// slice. If dst has enough capacity, no allocation takes place and the result
// shares dst's backing array. Otherwise the result is grown as needed and
// always holds the complete conversion; it is never truncated.
func AppendUTF16(dst []uint16, s string) []uint16 {
	for _, r := range s { // range yields U+FFFD for every invalid byte
		dst = appendRune16(dst, r)
	}
	return dst
}

// AppendUTF8 appends the UTF-8 form of u to dst, following the same
// contract as AppendUTF16.
func AppendUTF8(dst []byte, u []uint16) []byte {
	for i := 0; i < len(u); i++ {
		r, n := decodeUTF16(u[i:])
		dst = utf8.AppendRune(dst, r)
		i += n - 1
	}
	return dst
}

// AppendWide appends the code points of s to dst, following the same
// contract as AppendUTF16.
func AppendWide(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst
}

// Fits reports whether result still lives in the backing array of the
// scratch buffer it has been appended to, i.e. whether a conversion got along
// without allocating.
func Fits[T byte | uint16 | rune](scratch, result []T) bool {
	if cap(scratch) == 0 || cap(result) == 0 {
		return cap(scratch) == 0 && len(result) == 0
	}
	return &scratch[:cap(scratch)][0] == &result[:cap(result)][0]
}

// ---------------------------------------------------------------------------

// CString returns s up to, but not including, its first NUL byte.
// This mirrors reading s as a null-terminated C string.
func CString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// CompareUTF16 compares two UTF-16 strings in code unit order.
// Note that code unit order differs from code point order for supplementary
// characters, which sort before U+E000..U+FFFF.
func CompareUTF16(a, b []uint16) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func appendRune16(dst []uint16, r rune) []uint16 {
	if r < 0 || r > unicode.MaxRune || utf16.IsSurrogate(r) {
		r = ReplacementChar
	}
	if r >= 0x10000 {
		r1, r2 := utf16.EncodeRune(r)
		return append(dst, uint16(r1), uint16(r2))
	}
	return append(dst, uint16(r))
}

// decodeUTF16 decodes the first code point of u. It returns the rune and the
// number of code units consumed (1 or 2).
func decodeUTF16(u []uint16) (rune, int) {
	r := rune(u[0])
	if !utf16.IsSurrogate(r) {
		return r, 1
	}
	if r < 0xdc00 && len(u) > 1 {
		if d := utf16.DecodeRune(r, rune(u[1])); d != ReplacementChar {
			return d, 2
		}
	}
	tracer().Debugf("unpaired surrogate %#04x replaced", r)
	return ReplacementChar, 1
}
