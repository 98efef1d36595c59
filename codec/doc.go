/*
Package codec converts text between the three representations used by
package unistr: UTF-8 (Go strings), UTF-16 (slices of code units) and
UTF-32 (slices of runes, also called "wide" strings).

Conversion never fails. Every malformed code unit, be it an invalid UTF-8
byte, an unpaired surrogate or a rune outside the Unicode code space, is
replaced by U+FFFD and conversion continues. A round trip of well-formed
text is lossless; a round trip of malformed text is not.

Hot paths may avoid heap allocation by converting into a caller supplied
scratch buffer (see the Append… functions) or into a pooled buffer
(see BorrowUTF16). Buffer sizes may be estimated with the sizing helpers,
which add a generous pad of BufferPad code units.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to unistr.codec .
func tracer() tracing.Trace {
	return tracing.Select("unistr.codec")
}
