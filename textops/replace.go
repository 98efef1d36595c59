package textops

import (
	"regexp"
	"strings"
)

// FindAndReplace replaces all non-overlapping occurrences of old in s by new.
// An empty old leaves s unchanged.
func FindAndReplace(s, old, new string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, new)
}

// RegexFlags modify the interpretation of a regular expression.
type RegexFlags uint32

// Flags for RegexReplaceAll.
const (
	UnixLines             RegexFlags = 1   // only '\n' ends a line; this is always the case
	CaseInsensitive       RegexFlags = 2   // match ignoring case
	Comments              RegexFlags = 4   // allow white space and #-comments in the pattern
	Multiline             RegexFlags = 8   // ^ and $ match at line boundaries
	Literal               RegexFlags = 16  // treat the pattern as a literal string
	DotAll                RegexFlags = 32  // '.' matches line terminators, too
	UWord                 RegexFlags = 256 // Unicode word boundaries; not supported, \b is ASCII based
	ErrorOnUnknownEscapes RegexFlags = 512 // reject unknown escapes; this is always the case
)

// CompileRegex compiles pattern with flags.
func CompileRegex(pattern string, flags RegexFlags) (*regexp.Regexp, error) {
	if flags&Literal != 0 {
		pattern = regexp.QuoteMeta(pattern)
	} else if flags&Comments != 0 {
		pattern = stripPatternComments(pattern)
	}
	if flags&UWord != 0 {
		tracer().Infof("regex flag UWord not supported, using ASCII word boundaries")
	}
	var prefix string
	if flags&CaseInsensitive != 0 {
		prefix += "i"
	}
	if flags&Multiline != 0 {
		prefix += "m"
	}
	if flags&DotAll != 0 {
		prefix += "s"
	}
	if prefix != "" {
		pattern = "(?" + prefix + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot compile regular expression %q: %v", pattern, err)
	}
	return re, err
}

// RegexReplaceAll replaces all matches of pattern in s by replacement.
// Inside replacement, $1 or ${name} denote submatches.
func RegexReplaceAll(s, pattern, replacement string, flags RegexFlags) (string, error) {
	re, err := CompileRegex(pattern, flags)
	if err != nil {
		return s, err
	}
	return re.ReplaceAllString(s, replacement), nil
}

// FindNumber counts the non-overlapping occurrences of sub in s.
func FindNumber(s, sub string) int {
	return CountOccurrences(s, sub)
}

// CountOccurrences counts the non-overlapping occurrences of sub in s.
// sub is taken literally. An empty sub is never found.
func CountOccurrences(s, sub string) int {
	if sub == "" || s == "" {
		return 0
	}
	re, err := CompileRegex(sub, Literal)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(s, -1))
}

// stripPatternComments removes unescaped white space and comments starting
// with '#' from a pattern, except inside character classes.
func stripPatternComments(pattern string) string {
	var b strings.Builder
	inClass, escaped, inComment := false, false, false
	for _, r := range pattern {
		switch {
		case inComment:
			if r == '\n' {
				inComment = false
			}
			continue
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '#':
			inComment = true
			continue
		case isWhiteSpace(r):
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
