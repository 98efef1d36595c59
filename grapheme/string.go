package grapheme

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"
)

// String is a type to represent a graheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string (or array of bytes) is an operation with
// runtime complexiy O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
//
type String interface {
	Nth(int) string   // return nth grapheme
	Len() int         // length of string in units of user perceived characters
	Offset(n int) int // byte position of nth grapheme; Offset(Len()) is the byte length
	String() string   // the underlying Go string
}

// StringFromString creates a grapheme string from a Go string.
// Break positions are stored as compactly as the byte length of s allows.
//
// Invalid UTF-8 bytes in s will each count as a separate grapheme.
//
func StringFromString(s string) String {
	if len(s) < math.MaxUint8 {
		return makeString[uint8](s)
	} else if len(s) < math.MaxUint16 {
		return makeString[uint16](s)
	}
	tracer().Debugf("large grapheme string of %d bytes", len(s))
	return makeString[int32](s)
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// Count returns the number of graphemes in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Breaks returns the byte positions of all grapheme boundaries of s,
// including 0 and len(s). For an empty string, Breaks returns [0].
func Breaks(s string) []int {
	breaks := make([]int, 1, len(s)/2+2)
	pos, state := 0, -1
	rest := s
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		breaks = append(breaks, pos)
	}
	return breaks
}

// ---------------------------------------------------------------------------

type offset interface {
	uint8 | uint16 | int32
}

type breakString[T offset] struct {
	content string
	breaks  []T
}

func makeString[T offset](s string) String {
	gstr := &breakString[T]{content: s}
	gstr.breaks = make([]T, 1, len(s)/2+2)
	pos, state := 0, -1
	rest := s
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		gstr.breaks = append(gstr.breaks, T(pos))
	}
	tracer().Debugf("grapheme string %q has breaks %v", s, gstr.breaks)
	return gstr
}

func (gstr *breakString[T]) Nth(n int) string {
	if n < 0 || n >= gstr.Len() {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *breakString[T]) Len() int {
	return len(gstr.breaks) - 1
}

func (gstr *breakString[T]) Offset(n int) int {
	if n < 0 || n > gstr.Len() {
		panic(fmt.Sprintf("grapheme string offset out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	return int(gstr.breaks[n])
}

func (gstr *breakString[T]) String() string {
	return gstr.content
}
