/*
Package unistr is about Unicode aware string handling for applications.

Description

Applications receive text from many sources: user input, configuration
files, file names, network responses. Package unistr provides the string
operations an application needs for such text, with characters being what
users perceive as characters, and with case and ordering following the
rules of a locale.

   u := unistr.Default()
   u.ToUpper("Straße")           // "STRASSE"
   u.Left("Übereinkommen", 4)    // "Über"
   u.FindWord("12345string", "string")

Utils binds a locale and a set of string options to the text operations.
Default() uses the locale of the application configuration (key
"unistr.locale"), or the locale of the host system. The package level
functions of unistr use Default().

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

Contents

The algorithms live in sub-packages, which may be used on their own:

   codec      conversion between UTF-8, UTF-16 and UTF-32
   locale     locales and string options
   grapheme   strings of user perceived characters
   segment    segmenting text into graphemes, words and sentences
   collation  locale sensitive ordering
   textops    case mapping, normalization, comparison, substrings,
              trimming, splitting, replacing and parsing

Package unistr itself is a thin layer which supplies locale and options.

Collation

Locale sensitive ordering needs a collator, which is expensive to create.
A sort operation therefore initializes a collator once and uses it for all of
its comparisons. Clients which sort in more than one goroutine should
create a collation.Scope per goroutine. For simple applications, unistr holds
a single process-wide scope (see InitializeCollator), which is guarded by a
mutex. Every comparison will acquire the mutex, which is a noticeable cost
for large sorts.

Tracing

Packages of unistr trace to selectors "unistr", "unistr.locale",
"unistr.textops", and so on, using package schuko/tracing.
*/
package unistr

import (
	"github.com/npillmayer/schuko/tracing"
)

// Version is the version of this module.
const Version = "v0.1.0"

// tracer traces to unistr .
func tracer() tracing.Trace {
	return tracing.Select("unistr")
}
