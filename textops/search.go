package textops

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/unistr/locale"
)

// FindWord checks if word occurs in s at a word start, ignoring case.
//
// FindWord does not use Unicode word boundaries. Starting at the beginning
// of s, it looks for the next occurrence of word. If the occurrence is not at
// the current position, the current position is moved past a run of digits,
// a run of Latin letters, or a single other character, followed by any white
// space, and the search is repeated from there. Thus "string" is found in
// "12345string", but "ring" is not, and "视" is found in "我的视频".
func FindWord(s, word string) bool {
	s = FoldCase(s, locale.FoldCaseDefault)
	word = FoldCase(word, locale.FoldCaseDefault)
	if word == "" {
		return true
	}
	for offset := 0; offset < len(s); {
		idx := strings.Index(s[offset:], word)
		if idx < 0 {
			return false
		}
		if idx == 0 {
			return true
		}
		offset = skipWordStart(s, offset)
		for offset < len(s) {
			r, w := utf8.DecodeRuneInString(s[offset:])
			if !isWhiteSpace(r) {
				break
			}
			offset += w
		}
	}
	return false
}

// skipWordStart moves past the run of digits or Latin letters at offset, or
// past a single character otherwise.
func skipWordStart(s string, offset int) int {
	r, w := utf8.DecodeRuneInString(s[offset:])
	var inRun func(rune) bool
	switch {
	case unicode.IsDigit(r):
		inRun = unicode.IsDigit
	case IsLatinChar(r) && unicode.IsLetter(r):
		inRun = func(r rune) bool { return IsLatinChar(r) && unicode.IsLetter(r) }
	default:
		return offset + w
	}
	for offset < len(s) {
		r, w = utf8.DecodeRuneInString(s[offset:])
		if !inRun(r) {
			break
		}
		offset += w
	}
	return offset
}

// IsLatinChar is true for code points of the blocks Basic Latin,
// Latin-1 Supplement, Latin Extended-A and Latin Extended-B.
// U+00FF is not included.
func IsLatinChar(r rune) bool {
	return (r >= 0 && r < 0xFF) || (r >= 0x100 && r <= 0x24F)
}
