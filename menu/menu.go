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

// Package menu renders the list of programs shown by the menu loader.
//
// The block always begins with a single digit, the number of programs. In the
// Simple format this is followed by the terminator and the loader prints its
// own prompt. The Full format follows the digit with a newline and then one
// line per program, each of the form
//
//	1) NAME
//
// bracketed by newline codes, and ends with the terminator.
//
// Only the first digit of the count is used. A cartridge with twelve programs
// will report a count of "1". This is what the menu loader expects and so it
// is preserved.
package menu

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/zx81cart/charset"
)

// Mode selects the format of the menu block.
type Mode int

// List of valid Mode values.
const (
	Full Mode = iota
	Simple
)

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Simple:
		return "simple"
	}
	return "unknown"
}

// MaxCount is the largest number of programs whose count is represented
// correctly in the menu block.
const MaxCount = 9

// countDigit returns the character used to represent the number of programs.
func countDigit(n int) rune {
	return rune(strconv.Itoa(n)[0])
}

// entry returns the text of a single line in the Full format. The index is
// zero based.
func entry(idx int, name string) string {
	return strconv.Itoa(idx+1) + ") " + strings.ToUpper(name)
}

// Encode the list of program names.
func Encode(names []string, mode Mode) []byte {
	b := make([]byte, 0, Len(names, mode))
	b = append(b, charset.Encode(countDigit(len(names))))

	if mode == Simple {
		return append(b, charset.Terminator)
	}

	b = append(b, charset.Newline)
	for i, n := range names {
		b = append(b, charset.Newline)
		b = append(b, charset.EncodeString(entry(i, n))...)
		b = append(b, charset.Newline)
	}

	return append(b, charset.Terminator)
}

// Len returns the length of the menu block that Encode() would produce.
func Len(names []string, mode Mode) int {
	if mode == Simple {
		return 2
	}

	n := 3
	for i, s := range names {
		n += len([]rune(entry(i, s))) + 2
	}
	return n
}
