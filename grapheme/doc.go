/*
Package grapheme provides strings of user perceived characters.

Unicode Annex #29 defines the rules for breaking text into grapheme clusters,
words and sentences. A grapheme cluster (or simply “character”) may consist of
several code points, e.g. a base letter followed by combining marks, or a
sequence of emoji joined by ZWJ. Character counts in unistr always refer to
grapheme clusters, never to bytes or runes.

Grapheme Strings

This package provides a type `grapheme.String`. Grapheme strings are a
read-only data structure which stores the byte offsets of all character
boundaries of a Go string.

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %d", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3
	fmt.Printf("2nd grapheme starts at byte %d", s.Offset(1))           // => 3

Grapheme strings are not intended for large texts, but rather for small to
medium-sized strings. For larger texts clients should use a segment.Segmenter.

Breaking is done by github.com/rivo/uniseg.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapheme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to unistr.grapheme .
func tracer() tracing.Trace {
	return tracing.Select("unistr.grapheme")
}
