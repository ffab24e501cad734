package gsm7

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/rangetable"
)

// Encoding is one of the three SMS encodings a text may require.
type Encoding int8

// Encodings, ordered by increasing cost per character.
const (
	GSM7Bit         Encoding = iota // GSM 03.38 default alphabet
	GSM7BitExtended                 // GSM 03.38 default alphabet plus extension table
	UCS2                            // UCS-2, for everything else
)

func (enc Encoding) String() string {
	switch enc {
	case GSM7Bit:
		return "GSM_7BIT"
	case GSM7BitExtended:
		return "GSM_7BIT_EXTENDED"
	case UCS2:
		return "UNICODE"
	}
	return "Encoding(?)"
}

// Valid is true for the three defined encodings.
func (enc Encoding) Valid() bool {
	return enc >= GSM7Bit && enc <= UCS2
}

// The escape code 0x1B is not part of the printable default alphabet.
const baseAlphabet = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"

const extensionTable = "^{}\\[~]|€"

// Base is the range table of the GSM 03.38 default alphabet.
// Clients can check with unicode.Is(gsm7.Base, rune).
var Base = rangetable.New([]rune(baseAlphabet)...)

// Extension is the range table of characters reachable only via the
// GSM 03.38 escape code. It is disjoint from Base.
var Extension = rangetable.New([]rune(extensionTable)...)

// IsBase returns true if u is a character of the default alphabet.
// Surrogate halves are never members.
func IsBase(u uint16) bool {
	return unicode.Is(Base, rune(u))
}

// IsExtension returns true if u is a character of the extension table.
func IsExtension(u uint16) bool {
	return unicode.Is(Extension, rune(u))
}

// IsGSM returns true if u is representable in GSM 03.38, either in the
// default alphabet or with an escape code.
func IsGSM(u uint16) bool {
	return IsBase(u) || IsExtension(u)
}

// CodeUnits converts a string to UTF-16 code units. Invalid UTF-8 bytes
// will be converted to U+FFFD.
func CodeUnits(text string) []uint16 {
	return utf16.Encode([]rune(text))
}
