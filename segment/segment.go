/*
Package segment is about Unicode text segmenting.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading
Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the 'segments' of the text.
Clients are able to get the bytes of the segment by calling Bytes() or Text(),
and the byte position of the segment by calling Position().

Clients select the kind of segments by a Mode: grapheme clusters,
words or sentences, as defined by Unicode Annex #29.

  segmenter := segment.NewSegmenter(segment.Words)
  segmenter.InitString(...)
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

Word segments include runs of whitespace and single punctuation characters.
Concatenating all the segments of a text yields the text itself.

Breaking is done by github.com/rivo/uniseg.
*/
package segment

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rivo/uniseg"
)

// tracer traces to unistr.segment .
func tracer() tracing.Trace {
	return tracing.Select("unistr.segment")
}

// Mode selects the kind of segments a Segmenter produces.
type Mode int8

// Segmenting modes
const (
	Graphemes Mode = iota // user perceived characters
	Words                 // words, whitespace runs and punctuation
	Sentences             // sentences, including trailing whitespace
)

func (m Mode) String() string {
	switch m {
	case Graphemes:
		return "Graphemes"
	case Words:
		return "Words"
	case Sentences:
		return "Sentences"
	}
	return "<unknown mode>"
}

// A Segmenter receives a text and segments it into smaller parts,
// called segments.
type Segmenter struct {
	mode          Mode   // kind of segments to produce
	rest          string // input not yet segmented
	activeSegment string // the most recent segment
	state         int    // uniseg parser state
	pos           int64  // position of active segment in text
	next          int64  // position of next segment in text
	maxSegmentLen int    // maximum length allowed for segments
	err           error
	initialized   bool
}

// MaxSegmentSize is the default maximum size of a segment.
const MaxSegmentSize = 64 * 1024

// ErrTooLong flags a segment exceeding the maximum segment size.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("unistr segmenter: segment too long")
	ErrNotInitialized = errors.New("unistr segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter for a segmenting mode.
//
// Before using newly created segmenters, clients will have to call Init(...)
// or InitString(...) on them.
func NewSegmenter(mode Mode) *Segmenter {
	return &Segmenter{mode: mode, maxSegmentLen: MaxSegmentSize}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// The reader is drained by Init.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	var b strings.Builder
	var err error
	if reader != nil {
		for {
			var r rune
			if r, _, err = reader.ReadRune(); err != nil {
				break
			}
			b.WriteRune(r)
		}
	}
	s.InitString(b.String())
	if err != nil && err != io.EOF {
		s.setErr(err)
	}
}

// InitString initializes a Segmenter with a string to segment.
func (s *Segmenter) InitString(text string) {
	s.rest = text
	s.activeSegment = ""
	s.state = -1
	s.pos, s.next = 0, 0
	s.err = nil
	s.initialized = true
	if s.maxSegmentLen <= 0 {
		s.maxSegmentLen = MaxSegmentSize
	}
}

// MaxSegmentLen sets the maximum length of a segment. Next() will stop with
// ErrTooLong if a longer segment is found.
func (s *Segmenter) MaxSegmentLen(max int) {
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next gets the next segment.
//
// Next() advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
//
func (s *Segmenter) Next() bool {
	return s.BoundedNext(math.MaxInt64)
}

// BoundedNext gets the next segment, if it starts before bound.
//
// See also method `Next`.
//
func (s *Segmenter) BoundedNext(bound int64) bool {
	if !s.initialized {
		s.setErr(ErrNotInitialized)
		return false
	}
	if s.err != nil || len(s.rest) == 0 || s.next >= bound {
		s.activeSegment = ""
		return false
	}
	switch s.mode {
	case Words:
		s.activeSegment, s.rest, s.state = uniseg.FirstWordInString(s.rest, s.state)
	case Sentences:
		s.activeSegment, s.rest, s.state = uniseg.FirstSentenceInString(s.rest, s.state)
	default:
		s.activeSegment, s.rest, _, s.state = uniseg.FirstGraphemeClusterInString(s.rest, s.state)
	}
	if len(s.activeSegment) > s.maxSegmentLen {
		tracer().Errorf("segment at position %d exceeds %d bytes", s.next, s.maxSegmentLen)
		s.setErr(ErrTooLong)
		s.activeSegment = ""
		return false
	}
	s.pos = s.next
	s.next += int64(len(s.activeSegment))
	tracer().Debugf("%v: next segment = %q at %d", s.mode, s.activeSegment, s.pos)
	return true
}

// Bytes returns the most recent segment generated by a call to Next().
func (s *Segmenter) Bytes() []byte {
	return []byte(s.activeSegment)
}

// Text returns the most recent segment generated by a call to Next().
func (s *Segmenter) Text() string {
	return s.activeSegment
}

// Position returns the byte position of the most recent segment in the text.
func (s *Segmenter) Position() int64 {
	return s.pos
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Segments returns all segments of text for a given mode.
func Segments(text string, mode Mode) []string {
	var segs []string
	seg := NewSegmenter(mode)
	seg.InitString(text)
	for seg.Next() {
		segs = append(segs, seg.Text())
	}
	return segs
}
