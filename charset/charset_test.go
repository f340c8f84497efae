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

package charset_test

import (
	"testing"

	"github.com/jetsetilly/zx81cart/charset"
	"github.com/jetsetilly/zx81cart/test"
)

func TestDigitsAndLetters(t *testing.T) {
	test.ExpectEquality(t, charset.Encode('0'), 0x1c)
	test.ExpectEquality(t, charset.Encode('9'), 0x25)
	test.ExpectEquality(t, charset.Encode('A'), 0x26)
	test.ExpectEquality(t, charset.Encode('Z'), 0x3f)

	// lower case is folded to upper case
	test.ExpectEquality(t, charset.Encode('a'), 0x26)
	test.ExpectEquality(t, charset.Encode('z'), 0x3f)
}

func TestPunctuation(t *testing.T) {
	test.ExpectEquality(t, charset.Encode(' '), charset.Space)
	test.ExpectEquality(t, charset.Encode('"'), 0x0b)
	test.ExpectEquality(t, charset.Encode('#'), charset.Pound)
	test.ExpectEquality(t, charset.Encode(')'), 0x11)
	test.ExpectEquality(t, charset.Encode('.'), 0x1b)
}

func TestTotality(t *testing.T) {
	unmapped := "!%&'@[\\]^_`{|}~"

	for c := rune(0x20); c <= 0x7e; c++ {
		b := charset.Encode(c)

		// every code is one of the printable codes
		test.ExpectSuccess(t, b < 0x40, c)

		// and encoding is deterministic
		test.ExpectEquality(t, charset.Encode(c), b, c)
	}

	for _, c := range unmapped {
		test.ExpectEquality(t, charset.Encode(c), charset.Space, c)
	}

	// characters outside of the ASCII range are also spaces
	test.ExpectEquality(t, charset.Encode('£'), charset.Space)
	test.ExpectEquality(t, charset.Encode('\n'), charset.Space)
}

func TestEncodeString(t *testing.T) {
	b := charset.EncodeString("1) Mazogs")
	test.DemandEquality(t, len(b), 9)
	test.ExpectEquality(t, string(b), string([]byte{0x1d, 0x11, 0x00, 0x32, 0x26, 0x3f, 0x34, 0x2c, 0x38}))
}

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, charset.DecodeString(charset.EncodeString("3D MONSTER MAZE")), "3D MONSTER MAZE")

	// inverse video characters decode as the normal character
	test.ExpectEquality(t, charset.Decode(charset.Encode('K')|charset.Inverse), 'K')

	// graphics characters have no equivalent
	test.ExpectEquality(t, charset.Decode(0x01), '?')
	test.ExpectEquality(t, charset.Decode(0x40), '?')
}
