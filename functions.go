package unistr

import (
	"github.com/npillmayer/unistr/textops"
)

// The functions of this file use the default locale and options. Operations
// which do not depend on a locale are re-exported from package textops
// where this is convenient for clients.

// ToUpper maps s to upper case, using the default locale.
func ToUpper(s string) string { return Default().ToUpper(s) }

// ToLower maps s to lower case, using the default locale.
func ToLower(s string) string { return Default().ToLower(s) }

// FoldCase folds the case of s for caseless comparison.
func FoldCase(s string) string { return Default().FoldCase(s) }

// ToCapitalize maps the first letter of every word of s to upper case.
func ToCapitalize(s string) string { return textops.ToCapitalize(s) }

// TitleCase maps s to title case, using the default locale.
func TitleCase(s string) string { return Default().TitleCase(s) }

// Normalize brings s into normalization form f.
func Normalize(s string, f textops.NormalizationForm) string { return Default().Normalize(s, f) }

// EqualsNoCase compares a and b ignoring case.
func EqualsNoCase(a, b string) bool { return Default().EqualsNoCase(a, b, false) }

// CompareNoCase compares a and b ignoring case.
func CompareNoCase(a, b string) int { return Default().CompareNoCase(a, b, false) }

// StartsWithNoCase is true if s starts with prefix, ignoring case.
func StartsWithNoCase(s, prefix string) bool { return Default().StartsWithNoCase(s, prefix) }

// EndsWithNoCase is true if s ends with suffix, ignoring case.
func EndsWithNoCase(s, suffix string) bool { return Default().EndsWithNoCase(s, suffix) }

// Left returns the first n characters of s.
func Left(s string, n int) string { return Default().Left(s, n) }

// Right returns the last n characters of s.
func Right(s string, n int) string { return Default().Right(s, n) }

// Mid returns count characters of s, starting at character start.
func Mid(s string, start, count int) string { return Default().Mid(s, start, count) }

// Trim removes leading and trailing white space from s.
func Trim(s string) string { return textops.Trim(s) }

// Split splits s at every occurrence of delimiter. See textops.Split.
func Split(s, delimiter string, max int) []string { return textops.Split(s, delimiter, max) }

// SplitMulti splits every string of inputs by every delimiter. See textops.SplitMulti.
func SplitMulti(inputs, delimiters []string, max int) []string {
	return textops.SplitMulti(inputs, delimiters, max)
}

// FindWord checks if word occurs in s at a word start, ignoring case.
func FindWord(s, word string) bool { return textops.FindWord(s, word) }

// AlphaNumericCompare compares a and b in natural order.
func AlphaNumericCompare(a, b string) int64 { return textops.AlphaNumericCompare(a, b) }
