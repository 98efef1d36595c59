package textops

import (
	"strings"

	"github.com/npillmayer/unistr/codec"
	"github.com/npillmayer/unistr/locale"
	"golang.org/x/text/unicode/norm"
)

// Equals compares two strings code point by code point. If normalize is set,
// canonically equivalent strings are equal.
//
// b is read like a C string: it ends at its first NUL byte, if any.
func Equals(a, b string, normalize bool) bool {
	return Compare(a, codec.CString(b), normalize) == 0
}

// Compare compares two strings in code point order, returning -1, 0 or +1.
// If normalize is set, both strings are compared in NFD.
func Compare(a, b string, normalize bool) int {
	if normalize {
		a, b = norm.NFD.String(a), norm.NFD.String(b)
	}
	return strings.Compare(a, b)
}

// EqualsNoCase compares two strings after case folding them.
//
// b is read like a C string: it ends at its first NUL byte, if any.
func EqualsNoCase(a, b string, opts locale.StringOptions, normalize bool) bool {
	return CompareNoCase(a, codec.CString(b), opts, normalize) == 0
}

// CompareNoCase compares two strings after case folding them, returning
// -1, 0 or +1. An empty string sorts before any other string.
//
// If normalize is set, strings are decomposed before and after case folding.
// Folded strings are compared in UTF-16 code unit order, unless opts contains
// CompareCodePointOrder.
func CompareNoCase(a, b string, opts locale.StringOptions, normalize bool) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}
	fa, fb := foldForCompare(a, opts, normalize), foldForCompare(b, opts, normalize)
	if opts.Has(locale.CompareCodePointOrder) {
		return strings.Compare(fa, fb)
	}
	return compareCodeUnits(fa, fb)
}

func foldForCompare(s string, opts locale.StringOptions, normalize bool) string {
	if normalize {
		return norm.NFD.String(FoldCase(norm.NFD.String(s), opts))
	}
	return FoldCase(s, opts)
}

// compareCodeUnits compares two strings in UTF-16 code unit order, using
// pooled scratch buffers for the conversion.
func compareCodeUnits(a, b string) int {
	sa := codec.BorrowUTF16(codec.UTF8ToUTF16BufferSize(len(a), 1))
	defer sa.Release()
	sb := codec.BorrowUTF16(codec.UTF8ToUTF16BufferSize(len(b), 1))
	defer sb.Release()
	return codec.CompareUTF16(sa.Convert(a), sb.Convert(b))
}

// StartsWith is true if s starts with prefix. An empty prefix is a prefix of
// every string.
//
// prefix is read like a C string: it ends at its first NUL byte, if any.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, codec.CString(prefix))
}

// StartsWithNoCase is true if the case folded s starts with the case folded
// prefix. An empty prefix only matches an empty s.
//
// prefix is read like a C string: it ends at its first NUL byte, if any.
func StartsWithNoCase(s, prefix string, opts locale.StringOptions) bool {
	prefix = codec.CString(prefix)
	if prefix == "" {
		return s == ""
	}
	return strings.HasPrefix(FoldCase(s, opts), FoldCase(prefix, opts))
}

// EndsWith is true if s ends with suffix. An empty suffix is a suffix of
// every string.
//
// suffix is read like a C string: it ends at its first NUL byte, if any.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, codec.CString(suffix))
}

// EndsWithNoCase is true if the case folded s ends with the case folded
// suffix. An empty suffix only matches an empty s.
//
// suffix is read like a C string: it ends at its first NUL byte, if any.
func EndsWithNoCase(s, suffix string, opts locale.StringOptions) bool {
	suffix = codec.CString(suffix)
	if suffix == "" {
		return s == ""
	}
	return strings.HasSuffix(FoldCase(s, opts), FoldCase(suffix, opts))
}

// maxNumericDigits limits digit runs compared by value.
const maxNumericDigits = 15

// AlphaNumericCompare compares two strings in “natural” order: runs of
// digits are compared by their numeric value, other characters are compared
// ignoring ASCII case. Digits sort before letters.
//
// The result is negative if a < b, 0 if a == b and positive if a > b.
func AlphaNumericCompare(a, b string) int64 {
	l, r := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		lc, rc := l[i], r[j]
		if isDigit(lc) && isDigit(rc) {
			var lnum, rnum int64
			for d := 0; i < len(l) && isDigit(l[i]) && d < maxNumericDigits; d++ {
				lnum = lnum*10 + int64(l[i]-'0')
				i++
			}
			for d := 0; j < len(r) && isDigit(r[j]) && d < maxNumericDigits; d++ {
				rnum = rnum*10 + int64(r[j]-'0')
				j++
			}
			if lnum != rnum {
				return lnum - rnum
			}
			continue
		}
		lc, rc = asciiLower(lc), asciiLower(rc)
		if lc != rc {
			if lc < rc {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case j < len(r):
		return -1
	case i < len(l):
		return 1
	}
	return 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// SortByName reports whether name a sorts before name b, ignoring case.
func SortByName(a, b string) bool {
	return CompareNoCase(a, b, locale.FoldCaseDefault, false) < 0
}

// ContainsNonASCII is true if s contains any byte outside the ASCII range.
func ContainsNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return false
}

// ContainsAnyNoCase is true if s contains any of the keywords, ignoring case.
// Empty keywords are ignored.
func ContainsAnyNoCase(s string, keywords []string, opts locale.StringOptions) bool {
	folded := FoldCase(s, opts)
	for _, k := range keywords {
		if k != "" && strings.Contains(folded, FoldCase(k, opts)) {
			return true
		}
	}
	return false
}
