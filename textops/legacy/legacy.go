package legacy

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/unistr/locale"
	"github.com/npillmayer/unistr/textops"
)

// CompareNoCase compares at most n bytes of a and b, ignoring case.
// n = 0 compares the strings as a whole.
//
// Deprecated: Use textops.CompareNoCase. Limiting by bytes may split
// characters.
func CompareNoCase(a, b string, n int, opts locale.StringOptions, normalize bool) int {
	if n > 0 {
		a, b = truncate(a, n), truncate(b, n)
	}
	return textops.CompareNoCase(a, b, opts, normalize)
}

// EqualsNoCase is true if the first n bytes of a and b are equal, ignoring case.
//
// Deprecated: Use textops.EqualsNoCase.
func EqualsNoCase(a, b string, n int, opts locale.StringOptions, normalize bool) bool {
	return CompareNoCase(a, b, n, opts, normalize) == 0
}

func truncate(s string, n int) string {
	if n >= len(s) {
		return s
	}
	if !utf8.RuneStart(s[n]) {
		tracer().Errorf("byte limit %d splits a character of %q", n, s)
	}
	return s[:n]
}

// Replace replaces all occurrences of old in *s by new and returns the
// number of replacements.
//
// Deprecated: Use textops.FindAndReplace.
func Replace(s *string, old, new string) int {
	if s == nil || old == "" {
		return 0
	}
	n := strings.Count(*s, old)
	if n > 0 {
		*s = strings.ReplaceAll(*s, old, new)
	}
	return n
}
