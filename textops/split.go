package textops

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Split splits s at every occurrence of delimiter. If max > 0, at most max
// pieces are returned, the last one holding the unsplit remainder of s.
// Empty pieces are kept.
//
// An empty s results in an empty slice, an empty delimiter in [s].
func Split(s, delimiter string, max int) []string {
	if s == "" {
		return []string{}
	}
	if delimiter == "" {
		return []string{s}
	}
	if max <= 0 {
		return strings.Split(s, delimiter)
	}
	return strings.SplitN(s, delimiter, max)
}

// SplitRune splits s at every occurrence of the character delimiter.
// See Split.
func SplitRune(s string, delimiter rune, max int) []string {
	return Split(s, string(delimiter), max)
}

// SplitAny splits s at every occurrence of any of the delimiters. Where more
// than one delimiter matches at a position, the first one in the list is used.
// Adjacent delimiters produce empty pieces, which are kept.
//
// Unlike Split, an empty s results in [""]. Empty delimiters are ignored.
func SplitAny(s string, delimiters []string) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(s); {
		if d := matchDelimiter(s[i:], delimiters); d > 0 {
			pieces = append(pieces, s[start:i])
			i += d
			start = i
			continue
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return append(pieces, s[start:])
}

func matchDelimiter(s string, delimiters []string) int {
	for _, d := range delimiters {
		if d != "" && strings.HasPrefix(s, d) {
			return len(d)
		}
	}
	return 0
}

// SplitMulti splits every string of inputs by every delimiter. Delimiters are
// applied one after another: the first delimiter splits all the inputs, the
// second delimiter splits all the pieces resulting from the first pass, and
// so on. Empty pieces are dropped.
//
// If max > 0, splitting stops as soon as max pieces exist. The remaining
// pieces are returned unsplit, possibly still containing delimiters. The
// order of the delimiters therefore affects the result:
//
//    SplitMulti([]string{"a/b#c/d/e/foo/g::h/", "#p/q/r:s/x&extraNarfy"},
//               []string{"/", "#", ":", "Narf"}, 7)
//    => ["a", "b#c", "d", "e", "foo", "g::h/", "#p/q/r:s/x&extraNarfy"]
//
// If max does not exceed the number of inputs, inputs are returned unchanged.
func SplitMulti(inputs, delimiters []string, max int) []string {
	if len(inputs) == 0 {
		return []string{}
	}
	results := arraylist.New()
	for _, in := range inputs {
		results.Add(in)
	}
	var delims []string
	for _, d := range delimiters {
		if d != "" {
			delims = append(delims, d)
		}
	}
	if len(delims) == 0 || (max > 0 && max <= len(inputs)) {
		return toStrings(results)
	}
	remaining := max - results.Size()
	for _, d := range delims {
		pass := arraylist.New()
		results.Each(func(_ int, v interface{}) {
			if max > 0 && remaining <= 0 {
				pass.Add(v)
				return
			}
			limit := 0
			if max > 0 {
				limit = remaining + 1
			}
			n := 0
			for _, piece := range Split(v.(string), d, limit) {
				if piece != "" {
					pass.Add(piece)
					n++
				}
			}
			remaining -= n - 1
		})
		results = pass
		if max > 0 {
			if remaining = max - results.Size(); remaining <= 0 {
				break
			}
		}
	}
	return toStrings(results)
}

func toStrings(list *arraylist.List) []string {
	s := make([]string, 0, list.Size())
	list.Each(func(_ int, v interface{}) {
		s = append(s, v.(string))
	})
	return s
}
