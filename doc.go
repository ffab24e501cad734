/*
Package smscount is about counting the segments of SMS text messages.

Description

An SMS carrier transports text in segments of fixed size. How many
characters fit into a segment depends on the encoding of the text:

   encoding            single segment   per segment of a concatenated message
   GSM 7-bit                 160                 153
   GSM 7-bit extended        160                 153
   UCS-2                      70                  67

Concatenated messages carry a user data header in every segment, which
is why a segment of a longer message holds fewer characters. Characters
from the GSM extension table (e.g. '€' or '{') need an escape code and
count twice.

Package smscount computes the result record for a text: the encoding,
the effective length, the number of segments, the capacity per segment
and the number of characters still free in the last segment.

   res, err := smscount.Analyze("Hello World!")
   if err != nil { … }
   fmt.Printf("%d message(s), %d chars left", res.Messages, res.Remaining)

Classification of text is done by sub-package gsm7. Sub-package segment
will cut a text into the parts a carrier would send.

All functions are pure and safe for concurrent use. They do not
send messages, do not encode PDUs and do not transcode text.

Empty Text

An empty text is reported with zero messages, but with a full segment of
remaining capacity (160). Clients which bill a minimum of one segment
have to check for Length == 0 themselves.

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
*/
package smscount

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
