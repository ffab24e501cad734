package gsm7

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Classify returns the encoding a text requires.
//
// The empty text is GSM7Bit. Invalid UTF-8 bytes count as U+FFFD and
// will therefore force UCS2.
func Classify(text string) Encoding {
	return ClassifyUnits(CodeUnits(text))
}

// ClassifyUnits returns the encoding a sequence of UTF-16 code units requires.
func ClassifyUnits(units []uint16) Encoding {
	enc := GSM7Bit
	for i, u := range units {
		if IsBase(u) {
			continue
		}
		if !IsExtension(u) {
			T().Debugf("GSM 03.38: code unit %d (%#04x) forces %s", i, u, UCS2)
			return UCS2
		}
		enc = GSM7BitExtended
	}
	return enc
}

// ExtendedOnly returns all code units of text which are reachable only
// through the extension table, in order of appearance.
// Each of them occupies two positions in a GSM 7-bit message.
func ExtendedOnly(text string) []uint16 {
	var ext []uint16
	for _, u := range CodeUnits(text) {
		if IsExtension(u) && !IsBase(u) {
			ext = append(ext, u)
		}
	}
	return ext
}

// CountExtended returns the number of extension-only code units in text.
func CountExtended(text string) int {
	return CountExtendedUnits(CodeUnits(text))
}

// CountExtendedUnits is CountExtended for a sequence of code units.
func CountExtendedUnits(units []uint16) int {
	n := 0
	for _, u := range units {
		if IsExtension(u) && !IsBase(u) {
			n++
		}
	}
	return n
}

// NonGSM returns every code unit of text which is neither in the default
// alphabet nor in the extension table, in order of appearance and including
// duplicates. Characters outside the BMP are reported as two surrogate units.
//
// NonGSM is informational only; it tells which characters forced UCS2.
func NonGSM(text string) []uint16 {
	var non []uint16
	for _, u := range CodeUnits(text) {
		if !IsGSM(u) {
			non = append(non, u)
		}
	}
	return non
}

// UniqueNonGSM returns the distinct characters of text which cannot be
// represented in GSM 03.38, in order of first appearance. Different from
// NonGSM, this works on runes and is intended for reporting to humans.
func UniqueNonGSM(text string) []rune {
	set := linkedhashset.New()
	for _, r := range text {
		if r >= 0x10000 || !IsGSM(uint16(r)) {
			set.Add(r)
		}
	}
	runes := make([]rune, set.Size())
	for i, v := range set.Values() {
		runes[i] = v.(rune)
	}
	return runes
}
