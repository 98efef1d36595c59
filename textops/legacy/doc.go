/*
Package legacy holds deprecated text operations, kept for callers which
have not been migrated yet. New code should not use this package.

The comparisons of this package limit their arguments by a byte count.
This may cut a multi-byte character in half, which is why they are
unsafe for anything but ASCII text. Truncations which split a character
are reported to the tracer.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package legacy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to unistr.legacy .
func tracer() tracing.Trace {
	return tracing.Select("unistr.legacy")
}
