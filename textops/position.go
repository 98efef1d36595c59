package textops

import (
	"github.com/npillmayer/unistr/grapheme"
	"github.com/npillmayer/unistr/locale"
	"golang.org/x/text/unicode/norm"
)

// Sentinel results of GetCharPosition and CharPosition. All of them are
// negative, so they never collide with a valid byte offset.
const (
	Error       = -1 // invalid argument
	BeforeStart = -2 // the requested character lies before the start of the string
	AfterEnd    = -3 // the requested character lies beyond the end of the string
)

// Quadrant selects how CharPosition counts characters and which byte of the
// character it reports.
type Quadrant int8

// Character n is 0-based in every quadrant.
const (
	FirstNFromStart    Quadrant = iota // last byte of character n, counted from the start
	LastNFromEnd                       // last byte of character n, counted from the end
	RemainderFromStart                 // first byte of character n, counted from the start
	RemainderFromEnd                   // first byte of character n, counted from the end
)

func (q Quadrant) String() string {
	switch q {
	case FirstNFromStart:
		return "FirstNFromStart"
	case LastNFromEnd:
		return "LastNFromEnd"
	case RemainderFromStart:
		return "RemainderFromStart"
	case RemainderFromEnd:
		return "RemainderFromEnd"
	}
	return "<unknown quadrant>"
}

func quadrantFor(left, keepLeft bool) Quadrant {
	switch {
	case left && keepLeft:
		return FirstNFromStart
	case left:
		return LastNFromEnd
	case keepLeft:
		return RemainderFromStart
	}
	return RemainderFromEnd
}

func (q Quadrant) fromStart() bool { return q == FirstNFromStart || q == RemainderFromStart }
func (q Quadrant) lastByte() bool  { return q == FirstNFromStart || q == LastNFromEnd }

// GetCharPosition finds the byte offset of a character in s. Characters are
// grapheme clusters, and charCount is 0-based.
//
//    left   keepLeft   result
//    true   true       last byte of character charCount from the start
//    true   false      last byte of character charCount from the end
//    false  true       first byte of character charCount from the start
//    false  false      first byte of character charCount from the end
//
// If the character does not exist, the result is BeforeStart or AfterEnd,
// depending on the direction of the overrun. A negative charCount results in
// Error.
//
// Grapheme boundaries do not depend on the locale; loc is accepted for
// symmetry with the other character operations.
func GetCharPosition(s string, charCount int, left, keepLeft bool, loc locale.Locale) int {
	return CharPosition(s, charCount, quadrantFor(left, keepLeft))
}

// CharPosition finds the byte offset of character n of s (see GetCharPosition).
func CharPosition(s string, n int, q Quadrant) int {
	if n < 0 {
		return Error
	}
	breaks := grapheme.Breaks(s)
	k := len(breaks) - 1 // number of characters
	var idx int
	if q.fromStart() {
		if n >= k {
			if n == 0 {
				return BeforeStart
			}
			return AfterEnd
		}
		idx = n
	} else {
		if k == 0 {
			if n == 0 {
				return AfterEnd
			}
			return BeforeStart
		}
		if idx = k - 1 - n; idx < 0 {
			return BeforeStart
		}
	}
	if q.lastByte() {
		return breaks[idx+1] - 1
	}
	return breaks[idx]
}

// Left returns the first charCount characters of s. If keepLeft is false,
// Left returns s without its last charCount characters.
//
// s is brought into NFC first.
func Left(s string, charCount int, keepLeft bool, loc locale.Locale) string {
	s = norm.NFC.String(s)
	if charCount == 0 {
		if keepLeft {
			return ""
		}
		return s
	}
	idx := charCount - 1
	if !keepLeft {
		idx++
	}
	pos := GetCharPosition(s, idx, true, keepLeft, loc)
	switch pos {
	case Error:
		return s
	case BeforeStart:
		return ""
	case AfterEnd:
		if keepLeft {
			return s
		}
		return ""
	}
	return s[:pos+1]
}

// Right returns the last charCount characters of s. If keepRight is false,
// Right returns s without its first charCount characters.
//
// s is brought into NFC first.
func Right(s string, charCount int, keepRight bool, loc locale.Locale) string {
	s = norm.NFC.String(s)
	if charCount == 0 {
		if keepRight {
			return ""
		}
		return s
	}
	idx := charCount - 1
	if !keepRight {
		idx++
	}
	pos := GetCharPosition(s, idx, false, !keepRight, loc)
	switch pos {
	case Error:
		if keepRight {
			pos = len(s)
		} else {
			pos = 0
		}
	case BeforeStart:
		pos = 0
	case AfterEnd:
		pos = len(s)
	}
	return s[pos:]
}

// Mid returns charCount characters of s, starting at character startChar
// (0-based). A negative charCount selects all characters up to the end of s.
//
// s is brought into NFC first.
func Mid(s string, startChar, charCount int, loc locale.Locale) string {
	s = norm.NFC.String(s)
	if charCount == 0 {
		return ""
	}
	start := GetCharPosition(s, startChar, false, true, loc)
	if start < 0 { // Error, BeforeStart or AfterEnd
		return ""
	}
	rest := s[start:]
	if charCount < 0 {
		return rest
	}
	switch end := GetCharPosition(rest, charCount, false, true, loc); end {
	case AfterEnd:
		return rest
	case Error, BeforeStart:
		return ""
	default:
		return rest[:end]
	}
}
