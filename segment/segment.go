/*
Package segment cuts SMS text into the parts a carrier would send.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner.
Successive calls to a segmenter's Next() method will step through the
parts of a message. Clients get the text of a part by calling Bytes()
or Text().

  segmenter := segment.NewSegmenter()
  segmenter.Init(strings.NewReader(msg))
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }
  if err := segmenter.Err(); err != nil { … }

How it works

Different from bufio.Scanner, a segmenter has to see the complete text
before it is able to emit the first part: a single character outside
GSM 03.38 at the very end of a message changes the capacity of every
segment. The segmenter therefore reads its input up to MaxTextSize runes,
counts it with smscount.AnalyzeUnits and then fills segments greedily.

A text which fits into a single segment results in exactly one part,
the empty text results in none. Otherwise each part holds at most
Result().PerMessage code units, where a character of the GSM extension
table costs two units. Neither an escaped GSM character nor a UTF-16
surrogate pair will be split between two parts. If such a character
straddles a segment boundary, it starts the next part, so the number
of parts may be one more than Result().Messages.

The parts are plain text. Encoding them into PDUs, including the user
data header of concatenated messages, is left to an SMPP client.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package segment

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smscount"
	"github.com/npillmayer/smscount/gsm7"
	"github.com/pkg/errors"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// cuts it into the segments of an SMS message.
type Segmenter struct {
	reader        io.RuneReader   // where we get the runes from
	runes         []rune          // complete input text
	result        smscount.Result // counting result for the complete text
	pos           int             // index of the next rune to put into a segment
	activeSegment []byte          // the most recent segment
	units         int             // cost of activeSegment in code units
	maxTextLen    int             // maximum number of runes accepted
	err           error
	atEOF         bool // input has been read completely
}

// MaxTextSize is the maximum number of runes a segmenter will accept,
// unless set otherwise with Segmenter.MaxText().
// 255 segments of 153 characters is the limit of concatenated SMS.
const MaxTextSize = 255 * 153

// ErrTooLong flags an input text exceeding the maximum size.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("SMS segmenter: text too long")
	ErrNotInitialized = errors.New("SMS segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter() *Segmenter {
	return &Segmenter{maxTextLen: MaxTextSize}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
//
// A nil reader is a programming error; Next() will then return false and
// Err() will return an error wrapping smscount.ErrInvalidArgument.
func (s *Segmenter) Init(reader io.RuneReader) {
	s.reader = reader
	s.runes = s.runes[:0]
	s.result = smscount.Result{}
	s.pos = 0
	s.activeSegment = nil
	s.units = 0
	s.err = nil
	s.atEOF = false
	if s.maxTextLen == 0 {
		s.maxTextLen = MaxTextSize
	}
	if reader == nil {
		s.err = errors.Wrap(smscount.ErrInvalidArgument, "SMS segmenter initialized with nil reader")
	}
}

// MaxText sets the maximum number of runes the segmenter will accept.
// Values < 1 reset the limit to MaxTextSize.
func (s *Segmenter) MaxText(max int) {
	if max < 1 {
		max = MaxTextSize
	}
	s.maxTextLen = max
}

// Err returns the first error that was encountered by the Segmenter.
func (s *Segmenter) Err() error {
	return s.err
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Next advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during reading, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
	}
	if s.err != nil {
		s.activeSegment = nil
		return false
	}
	if !s.atEOF {
		if err := s.readInput(); err != nil {
			s.setErr(err)
			s.activeSegment = nil
			return false
		}
	}
	if s.pos >= len(s.runes) {
		s.activeSegment = nil
		s.units = 0
		return false
	}
	start := s.pos
	s.units = 0
	if s.result.Messages <= 1 {
		s.pos = len(s.runes)
		s.units = s.result.Length
	} else {
		for s.pos < len(s.runes) {
			c := s.cost(s.runes[s.pos])
			if s.units+c > s.result.PerMessage {
				break
			}
			s.units += c
			s.pos++
		}
	}
	s.activeSegment = []byte(string(s.runes[start:s.pos]))
	CT().P("units", strconv.Itoa(s.units)).Debugf("Next() = %q", string(s.activeSegment))
	return true
}

// Bytes returns the most recent segment generated by a call to Next().
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Units returns the number of code units the most recent segment occupies,
// including escape codes.
func (s *Segmenter) Units() int {
	return s.units
}

// Result returns the counting result for the complete input text.
// It is valid after the first call to Next().
func (s *Segmenter) Result() smscount.Result {
	return s.result
}

// cost is the number of code units r occupies in a segment.
func (s *Segmenter) cost(r rune) int {
	switch s.result.Encoding {
	case gsm7.UCS2:
		if r > 0xFFFF {
			return 2
		}
	case gsm7.GSM7BitExtended:
		if r <= 0xFFFF && gsm7.IsExtension(uint16(r)) {
			return 2
		}
	}
	return 1
}

func (s *Segmenter) readInput() error {
	for {
		r, sz, err := s.reader.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			CT().P("rune", fmt.Sprintf("%#U", r)).Errorf("ReadRune() error: %s", err)
			return err
		}
		if r == utf8.RuneError && sz == 1 {
			return errors.Wrapf(smscount.ErrInvalidArgument, "invalid UTF-8 at rune #%d", len(s.runes))
		}
		if len(s.runes) >= s.maxTextLen {
			return errors.Wrapf(ErrTooLong, "limit is %d runes", s.maxTextLen)
		}
		s.runes = append(s.runes, r)
	}
	s.atEOF = true
	s.result = smscount.AnalyzeUnits(utf16.Encode(s.runes))
	CT().Debugf("SMS segmenter: read %d runes, %s", len(s.runes), s.result)
	return nil
}

// Split cuts text into the parts of an SMS message.
func Split(text string) ([]string, error) {
	seg := NewSegmenter()
	seg.Init(strings.NewReader(text))
	var parts []string
	for seg.Next() {
		parts = append(parts, seg.Text())
	}
	return parts, seg.Err()
}
