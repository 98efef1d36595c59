package unistr

import (
	"github.com/npillmayer/unistr/locale"
	"github.com/npillmayer/unistr/textops"
)

// Utils binds a locale and string options to the text operations.
// Utils is a small value and may be copied freely.
//
// Options are passed to the operations which have variants: case folding,
// title casing, caseless comparison and normalization.
type Utils struct {
	Locale  locale.Locale
	Options locale.StringOptions
}

// Default returns a Utils for the default locale (see locale.Default)
// and default case folding.
func Default() Utils {
	return Utils{Locale: locale.Default(), Options: locale.FoldCaseDefault}
}

// New returns a Utils for a locale and options. Invalid option combinations
// are traced, but accepted.
func New(loc locale.Locale, opts locale.StringOptions) Utils {
	if err := opts.Validate(); err != nil {
		tracer().Errorf("options %v: %v", opts, err)
	}
	if loc.IsBogus() {
		tracer().Infof("bogus locale %v, root locale rules will apply", loc)
	}
	return Utils{Locale: loc, Options: opts}
}

// WithOptions returns a copy of u with options replaced.
func (u Utils) WithOptions(opts locale.StringOptions) Utils {
	return New(u.Locale, opts)
}

// WithLocale returns a copy of u with the locale replaced.
func (u Utils) WithLocale(loc locale.Locale) Utils {
	return New(loc, u.Options)
}

// --- Case ------------------------------------------------------------------

// ToUpper maps s to upper case.
func (u Utils) ToUpper(s string) string { return textops.ToUpper(s, u.Locale) }

// ToLower maps s to lower case.
func (u Utils) ToLower(s string) string { return textops.ToLower(s, u.Locale) }

// FoldCase folds the case of s for caseless comparison.
func (u Utils) FoldCase(s string) string { return textops.FoldCase(s, u.Options) }

// ToCapitalize maps the first letter of every word of s to upper case.
func (u Utils) ToCapitalize(s string) string { return textops.ToCapitalize(s) }

// TitleCase maps s to title case.
func (u Utils) TitleCase(s string) string { return textops.TitleCase(s, u.Locale, u.Options) }

// Normalize brings s into normalization form f.
func (u Utils) Normalize(s string, f textops.NormalizationForm) string {
	return textops.Normalize(s, u.Options, f)
}

// --- Comparison ------------------------------------------------------------

// Equals compares a and b code point by code point.
func (u Utils) Equals(a, b string, normalize bool) bool { return textops.Equals(a, b, normalize) }

// Compare compares a and b in code point order.
func (u Utils) Compare(a, b string, normalize bool) int { return textops.Compare(a, b, normalize) }

// EqualsNoCase compares a and b ignoring case.
func (u Utils) EqualsNoCase(a, b string, normalize bool) bool {
	return textops.EqualsNoCase(a, b, u.Options, normalize)
}

// CompareNoCase compares a and b ignoring case.
func (u Utils) CompareNoCase(a, b string, normalize bool) int {
	return textops.CompareNoCase(a, b, u.Options, normalize)
}

// StartsWith is true if s starts with prefix.
func (u Utils) StartsWith(s, prefix string) bool { return textops.StartsWith(s, prefix) }

// StartsWithNoCase is true if s starts with prefix, ignoring case.
func (u Utils) StartsWithNoCase(s, prefix string) bool {
	return textops.StartsWithNoCase(s, prefix, u.Options)
}

// EndsWith is true if s ends with suffix.
func (u Utils) EndsWith(s, suffix string) bool { return textops.EndsWith(s, suffix) }

// EndsWithNoCase is true if s ends with suffix, ignoring case.
func (u Utils) EndsWithNoCase(s, suffix string) bool {
	return textops.EndsWithNoCase(s, suffix, u.Options)
}

// AlphaNumericCompare compares a and b in natural order.
func (u Utils) AlphaNumericCompare(a, b string) int64 { return textops.AlphaNumericCompare(a, b) }

// ContainsAnyNoCase is true if s contains any of keywords, ignoring case.
func (u Utils) ContainsAnyNoCase(s string, keywords []string) bool {
	return textops.ContainsAnyNoCase(s, keywords, u.Options)
}

// --- Characters ------------------------------------------------------------

// GetCharPosition finds the byte offset of a character of s.
// See textops.GetCharPosition.
func (u Utils) GetCharPosition(s string, charCount int, left, keepLeft bool) int {
	return textops.GetCharPosition(s, charCount, left, keepLeft, u.Locale)
}

// Left returns the first n characters of s.
func (u Utils) Left(s string, n int) string { return textops.Left(s, n, true, u.Locale) }

// LeftRemainder returns s without its last n characters.
func (u Utils) LeftRemainder(s string, n int) string { return textops.Left(s, n, false, u.Locale) }

// Right returns the last n characters of s.
func (u Utils) Right(s string, n int) string { return textops.Right(s, n, true, u.Locale) }

// RightRemainder returns s without its first n characters.
func (u Utils) RightRemainder(s string, n int) string { return textops.Right(s, n, false, u.Locale) }

// Mid returns count characters of s, starting at character start.
func (u Utils) Mid(s string, start, count int) string {
	return textops.Mid(s, start, count, u.Locale)
}

// Width returns the display width of s in terminal cells.
func (u Utils) Width(s string) int { return textops.Width(s, u.Locale) }

// TruncateWidth truncates s to a display width of w cells.
func (u Utils) TruncateWidth(s string, w int, tail string) string {
	return textops.TruncateWidth(s, w, tail, u.Locale)
}

// --- Search ----------------------------------------------------------------

// FindWord checks if word occurs in s at a word start, ignoring case.
func (u Utils) FindWord(s, word string) bool { return textops.FindWord(s, word) }

// FindAndReplace replaces all occurrences of old in s by new.
func (u Utils) FindAndReplace(s, old, new string) string {
	return textops.FindAndReplace(s, old, new)
}

// RegexReplaceAll replaces all matches of pattern in s by replacement.
func (u Utils) RegexReplaceAll(s, pattern, replacement string, flags textops.RegexFlags) (string, error) {
	return textops.RegexReplaceAll(s, pattern, replacement, flags)
}

// FindNumber counts the occurrences of sub in s.
func (u Utils) FindNumber(s, sub string) int { return textops.FindNumber(s, sub) }

// --- Trim and split ----------------------------------------------------------

// Trim removes leading and trailing white space from s.
func (u Utils) Trim(s string) string { return textops.Trim(s) }

// TrimLeft removes leading white space from s.
func (u Utils) TrimLeft(s string) string { return textops.TrimLeft(s) }

// TrimRight removes trailing white space from s.
func (u Utils) TrimRight(s string) string { return textops.TrimRight(s) }

// TrimChars removes leading and trailing characters of s contained in chars.
func (u Utils) TrimChars(s, chars string) string { return textops.TrimChars(s, chars) }

// Split splits s at every occurrence of delimiter.
func (u Utils) Split(s, delimiter string, max int) []string {
	return textops.Split(s, delimiter, max)
}

// SplitAny splits s at every occurrence of any of delimiters.
func (u Utils) SplitAny(s string, delimiters []string) []string {
	return textops.SplitAny(s, delimiters)
}

// SplitMulti splits every string of inputs by every delimiter.
func (u Utils) SplitMulti(inputs, delimiters []string, max int) []string {
	return textops.SplitMulti(inputs, delimiters, max)
}

// --- Parsing -----------------------------------------------------------------

// TimeStringToSeconds parses a duration like "1:30:00" or "90 min".
func (u Utils) TimeStringToSeconds(s string) int { return textops.TimeStringToSeconds(s) }

// DateStringToYYYYMMDD converts a date like "2012-07-20" to 20120720.
func (u Utils) DateStringToYYYYMMDD(s string) int { return textops.DateStringToYYYYMMDD(s) }
