package textops

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/unistr/locale"
	"github.com/npillmayer/unistr/segment"
	"golang.org/x/text/cases"
)

// ToUpper maps s to upper case, following the rules of loc.
// The result may differ in length from s, e.g. "ß" maps to "SS".
func ToUpper(s string, loc locale.Locale) string {
	return cases.Upper(tagFor(loc)).String(s)
}

// ToLower maps s to lower case, following the rules of loc.
func ToLower(s string, loc locale.Locale) string {
	return cases.Lower(tagFor(loc)).String(s)
}

// FoldCase applies full Unicode case folding to s. Folding is locale
// independent and intended for caseless matching. It does not normalize.
//
//    input      FoldCaseDefault    FoldCaseExcludeSpecialI
//    I U+0049   i                  ı U+0131
//    İ U+0130   i U+0307           i
//    i          i                  i
//    ı U+0131   ı                  ı
//
func FoldCase(s string, opts locale.StringOptions) string {
	if opts.Has(locale.FoldCaseExcludeSpecialI) {
		s = strings.Map(turkicI, s)
	}
	return cases.Fold().String(s)
}

func turkicI(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return r
}

// ToCapitalize uppercases the first code point of every word of s, where words
// are separated by whitespace or punctuation (except for the apostrophe).
// No character is lowercased.
//
// ToCapitalize works on code points, not on characters. Characters which
// need more than one code point to be uppercased may not be capitalized
// correctly.
func ToCapitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	first := true
	for _, r := range s {
		if unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'') {
			first = true
		} else if first {
			r = unicode.ToUpper(r)
			first = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TitleCase titlecases s, following the rules of loc. By default, every word
// gets its first letter, number or symbol titlecased and all other
// characters lowercased. Options may modify this:
//
//   TitleCaseWholeString         treat s as a single word
//   TitleCaseSentences           titlecase sentences instead of words
//   TitleCaseNoLowercase         do not lowercase the remaining characters
//   TitleCaseNoBreakAdjustment   titlecase the first character of a word, whatever it is
//   TitleCaseAdjustToCased       titlecase the first cased character of a word
//
// Unlike ToCapitalize, TitleCase does not treat punctuation inside a word as
// a separator: "n.y.c" will be titlecased to "N.y.c".
func TitleCase(s string, loc locale.Locale, opts locale.StringOptions) string {
	if err := opts.Validate(); err != nil {
		tracer().Errorf("TitleCase called with options %v: %v", opts, err)
	}
	tag := tagFor(loc)
	title, lower := cases.Title(tag, cases.NoLower), cases.Lower(tag)
	var segs []string
	switch {
	case opts.Has(locale.TitleCaseWholeString):
		segs = []string{s}
	case opts.Has(locale.TitleCaseSentences):
		segs = segment.Segments(s, segment.Sentences)
	default:
		segs = segment.Segments(s, segment.Words)
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, seg := range segs {
		i := titleIndex(seg, opts)
		if i < 0 {
			b.WriteString(seg)
			continue
		}
		_, w := utf8.DecodeRuneInString(seg[i:])
		b.WriteString(seg[:i])
		b.WriteString(title.String(seg[i : i+w]))
		if opts.Has(locale.TitleCaseNoLowercase) {
			b.WriteString(seg[i+w:])
		} else {
			b.WriteString(lower.String(seg[i+w:]))
		}
	}
	return b.String()
}

// titleIndex finds the position of the character to titlecase in a segment,
// or -1.
func titleIndex(seg string, opts locale.StringOptions) int {
	if seg == "" {
		return -1
	}
	if opts.Has(locale.TitleCaseNoBreakAdjustment) {
		return 0
	}
	for i, r := range seg {
		if opts.Has(locale.TitleCaseAdjustToCased) {
			if isCased(r) {
				return i
			}
		} else if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSymbol(r) ||
			unicode.Is(unicode.Co, r) {
			return i
		}
	}
	return -1
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) ||
		unicode.Is(unicode.Other_Lowercase, r) || unicode.Is(unicode.Other_Uppercase, r)
}
