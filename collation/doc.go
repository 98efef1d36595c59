/*
Package collation provides locale sensitive ordering of strings.

A Collator compares strings according to the collation rules of a locale,
using golang.org/x/text/collate. Digit sequences are ordered by their numeric
value, unless configuration key "unistr.collation.numeric" is set to false.

Collators are not safe for concurrent use. For bulk operations like sorting a
table, clients create a Scope, initialize it once and use it for every
comparison of the operation:

	scope := collation.NewScope()
	scope.Initialize(locale.German, false)
	collation.Sort(scope, titles)
	scope.SortCompleted(len(titles))

Every goroutine has to own its scope. Scopes may be handed down call chains
with a context.Context (see WithScope and FromContext).

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package collation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to unistr.collation .
func tracer() tracing.Trace {
	return tracing.Select("unistr.collation")
}
