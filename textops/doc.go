/*
Package textops implements Unicode aware text operations on UTF-8 strings.

Operations are pure functions. Locale sensitive operations take a
locale.Locale, and operations with variants take a locale.StringOptions
value. There is no global state in this package; for locale sensitive
ordering see package collation.

Characters

Wherever an operation counts characters (Left, Right, Mid, GetCharPosition),
a character is a grapheme cluster, i.e. a user perceived character. Results
are byte offsets into the UTF-8 string.

Case

ToUpper, ToLower and TitleCase follow the rules of a locale. FoldCase is
locale independent and produces keys for caseless comparison. Option
FoldCaseExcludeSpecialI selects the Turkic mapping of dotted and dotless I.

Whitespace

Trim operations remove characters with the Unicode White_Space property,
not only ASCII space characters.

Malformed Input

Invalid UTF-8 is never rejected. Conversions substitute U+FFFD for invalid
bytes, and character operations treat every invalid byte as a character of
its own.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textops

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unistr/locale"
	"golang.org/x/text/language"
)

// tracer traces to unistr.textops .
func tracer() tracing.Trace {
	return tracing.Select("unistr.textops")
}

// tagFor returns the language tag to use for loc. Bogus locales use the
// root locale.
func tagFor(loc locale.Locale) language.Tag {
	if loc.IsBogus() {
		tracer().Debugf("bogus locale %v, using root locale", loc)
		return language.Und
	}
	return loc.Tag()
}
