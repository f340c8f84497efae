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

package zx7_test

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/test"
	"github.com/jetsetilly/zx81cart/zx7"
)

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()

	c, err := zx7.Compress(data)
	test.DemandSuccess(t, err)

	d, err := zx7.Decompress(c)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, data))

	return c
}

func TestEmpty(t *testing.T) {
	_, err := zx7.Compress(nil)
	test.ExpectSuccess(t, curated.Is(err, zx7.EmptyInput))

	_, err = zx7.Decompress(nil)
	test.ExpectFailure(t, err)
}

func TestSingleByte(t *testing.T) {
	c := roundTrip(t, []byte{0x42})

	// first byte, then one bit-byte holding the end marker's leading bits and
	// one more for the remaining bits
	test.ExpectEquality(t, c[0], 0x42)
	test.ExpectEquality(t, len(c), 4)
}

func TestKnownEncoding(t *testing.T) {
	// a literal followed by a run. the run is a back reference with offset 1
	// and length 7
	c := roundTrip(t, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})

	// byte 0: the first literal
	// byte 1: bits 0 (literal) 1 (match) 0 0 1 1 0 (gamma for 6) 1 (end marker)
	// byte 2: the literal 0x00
	// byte 3: the offset byte
	// bytes 4 to 6: the remainder of the end marker
	test.DemandEquality(t, len(c), 7)
	test.ExpectEquality(t, c[0], 0x01)
	test.ExpectEquality(t, c[1], 0x4d)
	test.ExpectEquality(t, c[2], 0x00)
	test.ExpectEquality(t, c[3], 0x00)
	test.ExpectEquality(t, c[6], 0x80)
}

func TestRuns(t *testing.T) {
	data := make([]byte, 16384)
	c := roundTrip(t, data)

	// a run of zeros compresses very well
	test.ExpectSuccess(t, len(c) < 64)
}

func TestLongOffsets(t *testing.T) {
	// random block repeated at a distance greater than 128 bytes to force the
	// long offset encoding
	rnd := rand.New(rand.NewPCG(1, 2))
	block := make([]byte, 1000)
	for i := range block {
		block[i] = byte(rnd.UintN(256))
	}

	data := append([]byte{}, block...)
	data = append(data, block...)

	c := roundTrip(t, data)
	test.ExpectSuccess(t, len(c) < len(block)+len(block)/4)
}

func TestRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		data := make([]byte, 1+rnd.IntN(3000))
		for i := range data {
			// a small alphabet gives a mix of literals and matches
			data[i] = byte(rnd.UintN(6))
		}
		roundTrip(t, data)
	}
}

func TestCorruptStream(t *testing.T) {
	c, err := zx7.Compress([]byte("MAZOGS MAZOGS MAZOGS"))
	test.DemandSuccess(t, err)

	// remove the end marker
	_, err = zx7.Decompress(c[:len(c)-2])
	test.ExpectSuccess(t, curated.Has(err, zx7.BadStream))
}
