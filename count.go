package smscount

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/smscount/gsm7"
	"github.com/pkg/errors"
)

// ErrInvalidArgument flags a violation of an argument contract, e.g. text
// which is not valid UTF-8.
var ErrInvalidArgument = errors.New("SMS counter: invalid argument")

// Capacities per encoding, indexed by gsm7.Encoding.
var (
	singleCapacity = [...]int{gsm7.GSM7Bit: 160, gsm7.GSM7BitExtended: 160, gsm7.UCS2: 70}
	multiCapacity  = [...]int{gsm7.GSM7Bit: 153, gsm7.GSM7BitExtended: 153, gsm7.UCS2: 67}
)

// SingleCapacity is the maximum number of characters of a message which
// fits into a single segment. Returns 0 for invalid encodings.
func SingleCapacity(enc gsm7.Encoding) int {
	if !enc.Valid() {
		return 0
	}
	return singleCapacity[enc]
}

// MultiCapacity is the maximum number of characters per segment of
// a concatenated message. Returns 0 for invalid encodings.
func MultiCapacity(enc gsm7.Encoding) int {
	if !enc.Valid() {
		return 0
	}
	return multiCapacity[enc]
}

// Result is the outcome of counting a text.
type Result struct {
	Encoding   gsm7.Encoding // encoding the text requires
	Length     int           // effective length, extension characters counting twice
	Messages   int           // number of segments
	PerMessage int           // capacity per segment
	Remaining  int           // characters free in the last segment
}

func (res Result) String() string {
	return fmt.Sprintf("%s: length=%d messages=%d per-message=%d remaining=%d",
		res.Encoding, res.Length, res.Messages, res.PerMessage, res.Remaining)
}

// Compute calculates the segment arithmetic for a text of a given encoding
// and effective length.
//
// If length exceeds the single segment capacity of enc, the capacity per
// segment of a concatenated message is used. For length 0, Messages is 0
// and Remaining is a full segment.
func Compute(enc gsm7.Encoding, length int) (Result, error) {
	if !enc.Valid() {
		return Result{}, errors.Wrapf(ErrInvalidArgument, "unknown encoding %d", enc)
	}
	if length < 0 {
		return Result{}, errors.Wrapf(ErrInvalidArgument, "negative length %d", length)
	}
	return compute(enc, length), nil
}

// compute expects a valid encoding and a non-negative length.
func compute(enc gsm7.Encoding, length int) Result {
	res := Result{Encoding: enc, Length: length, PerMessage: singleCapacity[enc]}
	if length > res.PerMessage {
		res.PerMessage = multiCapacity[enc]
	}
	res.Messages = length / res.PerMessage
	res.Remaining = res.PerMessage // also for length 0
	if rest := length % res.PerMessage; rest != 0 {
		res.Messages++
		res.Remaining = res.PerMessage - rest
	} else if length > 0 {
		res.Remaining = 0
	}
	return res
}

// Analyze classifies a text and counts its segments.
// text must be valid UTF-8, otherwise ErrInvalidArgument is returned.
func Analyze(text string) (Result, error) {
	if !utf8.ValidString(text) {
		return Result{}, errors.Wrapf(ErrInvalidArgument, "text is not valid UTF-8 at byte %d",
			invalidOffset(text))
	}
	return AnalyzeUnits(gsm7.CodeUnits(text)), nil
}

// AnalyzeUnits classifies a sequence of UTF-16 code units and counts its
// segments. Every code unit counts as one character, characters outside
// the BMP therefore count twice.
func AnalyzeUnits(units []uint16) Result {
	enc := gsm7.ClassifyUnits(units)
	length := len(units)
	if enc == gsm7.GSM7BitExtended {
		length += gsm7.CountExtendedUnits(units)
	}
	res := compute(enc, length)
	CT().Debugf("SMS counter: %s", res)
	return res
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in text, or -1.
func invalidOffset(text string) int {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, sz := utf8.DecodeRuneInString(text[i:]); sz == 1 {
				return i
			}
		}
	}
	return -1
}
