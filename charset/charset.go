// This file is part of zx81cart.
//
// zx81cart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zx81cart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zx81cart.  If not, see <https://www.gnu.org/licenses/>.

// Package charset converts text to and from the ZX81 character set.
//
// The ZX81 does not use ASCII. Character codes 0x00 to 0x3F are the printable
// characters, with the digits and letters in two contiguous ranges. Setting
// bit 7 selects the inverse video version of the same character.
//
// Encode() is a total function. Any character without a ZX81 equivalent is
// encoded as a space.
package charset

import "unicode"

// Character codes with special meaning.
const (
	Space      byte = 0x00
	Pound      byte = 0x0C
	Newline    byte = 0x76
	Terminator byte = 0x09

	// the bit that selects inverse video
	Inverse byte = 0x80
)

const (
	digitBase  byte = 0x1C
	letterBase byte = 0x26
)

var punctuation = map[rune]byte{
	' ': Space,
	'"': 0x0B,
	'#': Pound,
	'$': 0x0D,
	':': 0x0E,
	'?': 0x0F,
	'(': 0x10,
	')': 0x11,
	'>': 0x12,
	'<': 0x13,
	'=': 0x14,
	'+': 0x15,
	'-': 0x16,
	'*': 0x17,
	'/': 0x18,
	';': 0x19,
	',': 0x1A,
	'.': 0x1B,
}

// decoding table for codes 0x00 to 0x3F. the graphics characters between
// 0x01 and 0x0A have no ASCII equivalent
var decode [0x40]rune

func init() {
	for i := range decode {
		decode[i] = '?'
	}
	for r, b := range punctuation {
		decode[b] = r
	}
	for r := '0'; r <= '9'; r++ {
		decode[digitBase+byte(r-'0')] = r
	}
	for r := 'A'; r <= 'Z'; r++ {
		decode[letterBase+byte(r-'A')] = r
	}
}

// Encode a single character.
func Encode(r rune) byte {
	switch {
	case r >= '0' && r <= '9':
		return digitBase + byte(r-'0')
	case r >= 'a' && r <= 'z':
		r = unicode.ToUpper(r)
		fallthrough
	case r >= 'A' && r <= 'Z':
		return letterBase + byte(r-'A')
	}

	if b, ok := punctuation[r]; ok {
		return b
	}

	return Space
}

// EncodeString encodes every character in the string.
func EncodeString(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, Encode(r))
	}
	return b
}

// Decode a single character code. The inverse video bit is ignored. Codes
// without a printable ASCII equivalent are decoded as '?'.
func Decode(b byte) rune {
	b &^= Inverse
	if int(b) >= len(decode) {
		return '?'
	}
	return decode[b]
}

// DecodeString decodes every character code in the slice.
func DecodeString(b []byte) string {
	r := make([]rune, len(b))
	for i := range b {
		r[i] = Decode(b[i])
	}
	return string(r)
}
