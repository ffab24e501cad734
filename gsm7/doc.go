/*
Package gsm7 classifies text according to the GSM 03.38 character set.

GSM 03.38 Introduction

SMS carriers transport text either in the GSM 7-bit default alphabet or, if
a message contains a character the alphabet cannot represent, in UCS-2.
The default alphabet has a small extension table, reachable by an escape
code. Characters from the extension table therefore occupy two positions
of the alphabet.

This package holds both tables and decides which of three encodings a text
requires:

   GSM7Bit          every character is in the default alphabet
   GSM7BitExtended  every character is in the default alphabet or in the extension table
   UCS2             at least one character is in neither table

Code Units

Classification works on UTF-16 code units, not on runes and not on graphemes.
This is how carriers bill UCS-2: a character outside the Basic Multilingual
Plane (e.g., most emoji) counts as two units, and neither of its surrogate
halves is ever a member of a GSM table.

Clients should not try to normalize text before classification. Membership
is exact and case-sensitive; 'Ç' is in the default alphabet, 'ç' is not.

___________________________________________________________________________

BSD License

Copyright © 2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package gsm7

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
