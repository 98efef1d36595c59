/*
Package locale wraps locale identifiers and the option flags which are passed
to every text operation of unistr.

A Locale is constructed from language, country, variant and keyword strings,
from a locale identifier such as "tr_TR" or "de-DE", or adapted from a
BCP 47 language.Tag. Malformed construction parameters result in a bogus
locale. Operations on a bogus locale fall back to the rules of the root
locale; they never fail.

	tr := locale.GetLocale("tr", "TR", "", "")
	fmt.Println(locale.LocaleID(tr))   // => tr_TR

Default Locale

Default returns the locale configured with key "unistr.locale" (see package
schuko/gconf). If no locale is configured, the locale of the operating system
environment is used. As a last resort, Default returns en_US.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locale

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to unistr.locale .
func tracer() tracing.Trace {
	return tracing.Select("unistr.locale")
}
