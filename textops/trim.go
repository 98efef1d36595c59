package textops

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/unistr/grapheme"
)

// isWhiteSpace checks for the Unicode White_Space property. This covers more
// than the ASCII space characters, e.g. U+00A0 NO-BREAK SPACE and U+3000
// IDEOGRAPHIC SPACE.
func isWhiteSpace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}

// Trim removes leading and trailing white space from s.
func Trim(s string) string {
	return strings.TrimFunc(s, isWhiteSpace)
}

// TrimLeft removes leading white space from s.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, isWhiteSpace)
}

// TrimRight removes trailing white space from s.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, isWhiteSpace)
}

// TrimChars removes all leading and trailing characters of s which are
// contained in chars. Characters are grapheme clusters, i.e. "e" will
// not trim the first code point of "é" in NFD.
func TrimChars(s, chars string) string {
	return trimGraphemes(s, chars, true, true)
}

// TrimCharsLeft removes all leading characters of s which are contained in chars.
func TrimCharsLeft(s, chars string) string {
	return trimGraphemes(s, chars, true, false)
}

// TrimCharsRight removes all trailing characters of s which are contained in chars.
func TrimCharsRight(s, chars string) string {
	return trimGraphemes(s, chars, false, true)
}

func trimGraphemes(s, chars string, left, right bool) string {
	if s == "" || chars == "" {
		return s
	}
	set := hashset.New()
	cs := grapheme.StringFromString(chars)
	for i := 0; i < cs.Len(); i++ {
		set.Add(cs.Nth(i))
	}
	gs := grapheme.StringFromString(s)
	from, to := 0, gs.Len()
	if left {
		for from < to && set.Contains(gs.Nth(from)) {
			from++
		}
	}
	if right {
		for to > from && set.Contains(gs.Nth(to-1)) {
			to--
		}
	}
	return s[gs.Offset(from):gs.Offset(to)]
}

// TrimAny removes any of the strings in set from the start and/or the end
// of s, as long as one of them matches. Empty strings in set are ignored.
func TrimAny(s string, set []string, start, end bool) string {
	for trimmed := start; trimmed; {
		trimmed = false
		for _, t := range set {
			if t != "" && strings.HasPrefix(s, t) {
				s, trimmed = s[len(t):], true
			}
		}
	}
	for trimmed := end; trimmed; {
		trimmed = false
		for _, t := range set {
			if t != "" && strings.HasSuffix(s, t) {
				s, trimmed = s[:len(s)-len(t)], true
			}
		}
	}
	return s
}

// RemoveCRLF removes all trailing CR and LF characters from s.
func RemoveCRLF(s string) string {
	return TrimAny(s, []string{"\n", "\r"}, false, true)
}
